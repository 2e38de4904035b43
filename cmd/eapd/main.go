// Command eapd manages an eAPD session from the terminal.
//
//	eapd login -u jane@example.com
//	eapd whoami
//	eapd edit-profile -phone 555-0100
//	eapd progress
//	eapd logout
//
// The API root and token store are configured through the environment
// (EAPD_API_URL, EAPD_TOKEN_STORE, EAPD_TOKEN_FILE, REDIS_URL) or a .env file.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/eapd/internal/client"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := client.Main(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
