// Package metrics exposes the server's prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RoomsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gameroom_rooms_created_total",
		Help: "Rooms created, by game variant.",
	}, []string{"variant"})

	Moves = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gameroom_moves_total",
		Help: "Move submissions, by game variant and outcome (accepted/rejected).",
	}, []string{"variant", "outcome"})

	GamesFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gameroom_games_finished_total",
		Help: "Finished games, by game variant and reason.",
	}, []string{"variant", "reason"})
)
