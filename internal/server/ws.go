package server

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// WSHandler upgrades the request and serves it as a new session.
func WSHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.WithError(err).Warn("ws upgrade")
		return
	}
	defer conn.Close()

	NewSession(conn, r.RemoteAddr).HandleConnection()
}
