package api

import "time"

// Snek is a move-choosing strategy, one instance per game in progress.
type Snek interface {
	Start(*State) error
	Move(*State) (string, string, error)
	End(*State) error
}

// State is the decoded view of one turn that a Snek works from. Deadline
// is when the engine must have answered by: the game's move timeout minus
// a reserve for encoding and network latency.
type State struct {
	Game     Game
	Turn     int
	Board    Board
	Me       Battlesnake
	Deadline time.Time
}

// Everything below is Battlesnake wireformat, see
// https://docs.battlesnake.com/api.

type InfoResponse struct {
	APIVersion string `json:"apiversion"`
	Author     string `json:"author,omitempty"`
	Color      string `json:"color,omitempty"`
	Head       string `json:"head,omitempty"`
	Tail       string `json:"tail,omitempty"`
	Version    string `json:"version,omitempty"`
}

type GameRequest struct {
	Game  Game        `json:"game"`
	Turn  int         `json:"turn"`
	Board Board       `json:"board"`
	You   Battlesnake `json:"you"`
}

type MoveResponse struct {
	Move  string `json:"move"`
	Shout string `json:"shout,omitempty"`
}

type Game struct {
	ID      string                 `json:"id"`
	Ruleset map[string]interface{} `json:"ruleset"`
	Map     string                 `json:"map"`
	Timeout int                    `json:"timeout"`
	Source  string                 `json:"source"`
}

type Battlesnake struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Health  int     `json:"health"`
	Body    []Point `json:"body"`
	Latency string  `json:"latency"`
	Head    Point   `json:"head"`
	Length  int     `json:"length"`
	Shout   string  `json:"shout"`
	Squad   string  `json:"squad"`
}

type Board struct {
	Height  int           `json:"height"`
	Width   int           `json:"width"`
	Food    []Point       `json:"food"`
	Hazards []Point       `json:"hazards"`
	Snakes  []Battlesnake `json:"snakes"`
}

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}
