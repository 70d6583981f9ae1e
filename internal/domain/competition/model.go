package competition

import (
	"context"
	"strconv"
)

type Type string

const (
	TypeClubs    Type = "clubs"
	TypeNational Type = "national"
)

// History is the bundled record of past finals for one competition.
type History struct {
	ID       int64
	Name     string
	Type     Type
	Editions []Edition
}

type Edition struct {
	Year         Year
	Winner       string
	WinnerLogo   string
	RunnerUp     string
	RunnerUpLogo string
	Host         string
	FinalScore   string
}

// Year is a calendar year such as 2018 or a season label such as "1992-93".
// Season wins when both are set.
type Year struct {
	Number int
	Season string
}

func (y Year) IsSeason() bool {
	return y.Season != ""
}

func (y Year) String() string {
	if y.Season != "" {
		return y.Season
	}
	return strconv.Itoa(y.Number)
}

// Repository serves the immutable bundled histories.
type Repository interface {
	List(ctx context.Context) ([]History, error)
	GetByID(ctx context.Context, competitionID int64) (History, bool, error)
}
