// meta/meta.go
package meta

// ROWS and COLS define the default board size.
const ROWS = 3
const COLS = 3

// GAMES defines the number of games per matchup.
const GAMES = 1000

// GO_ROUTINES defines the number of games played at the same time.
const GO_ROUTINES = 8

// STRONG_DEPTH and WEAK_DEPTH define the depth limits of the two experiment agents.
const STRONG_DEPTH = 10
const WEAK_DEPTH = 1

// PLAY_DEPTH defines the depth limit of the computer opponent in play mode.
const PLAY_DEPTH = 10

// OUTPUT_DIR defines where experiment records are written.
const OUTPUT_DIR = "experiments"

// LOG_LEVEL defines the default zerolog level.
const LOG_LEVEL = "info"
