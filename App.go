package main

import (
	"fmt"
	"github.com/gin-gonic/gin"
	"io"
	"net/http"
	"os"
)

const ExitCodeMainError = 1

const ListenPort = ":8080"

// RunApp wires the container and serves until the listener fails. When
// DATABASE_FILEPATH is unset the sheet lives in a scratch file removed on
// shutdown, so no state survives the session.
func RunApp() error {
	gin.SetMode(gin.ReleaseMode)

	databasePath := os.Getenv("DATABASE_FILEPATH")
	if databasePath == "" {
		f, err := os.CreateTemp("", "gridsheet_*.db")
		if err != nil {
			return err
		}
		_ = f.Close()

		databasePath = f.Name()
		defer os.Remove(databasePath)
	}

	serviceContainer, err := BuildServiceContainer(databasePath)

	if err == nil {
		serviceContainer.WebhookDispatcher.Start()
		defer serviceContainer.WebhookDispatcher.Close()
		defer serviceContainer.Database.Close()

		err = http.ListenAndServe(ListenPort, serviceContainer.Router)
	}

	return err
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
	}

	if err != nil {
		return ExitCodeMainError
	}

	return 0
}
