// Command eapd-api serves the eAPD authentication, profile and APD API.
//
// Configuration comes from the environment or a .env file. AUTH_SIGNING_KEY
// is required; set EAPD_STORAGE=postgres with PG_CONN_URL for persistent
// users and EAPD_SEED_FILE to load development data.
package main

import (
	"context"
	"os"

	"github.com/dmitrymomot/eapd/internal/server"
)

func main() {
	os.Exit(server.Main(context.Background(), os.Stderr))
}
