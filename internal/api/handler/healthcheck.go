package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

const Banner = "Revenue Intelligence Backend is running"

func RootHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(Banner)); err != nil {
			logrus.WithError(err).Warn("Erro ao responder a rota raiz")
		}
	})
}

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})
}
