package apifootball

import "time"

const (
	defaultBaseURL     = "https://api-football-v1.p.rapidapi.com/v3"
	defaultHost        = "api-football-v1.p.rapidapi.com"
	defaultHTTPTimeout = 10 * time.Second

	headerRapidAPIHost = "x-rapidapi-host"
	headerRapidAPIKey  = "x-rapidapi-key"

	playersPath    = "/players"
	topScorersPath = "/players/topscorers"

	// Upstream error bodies are passed through in the error message; cap the
	// read so a misbehaving upstream cannot balloon logs or responses.
	maxErrorBodyBytes = 2048
)
