package main

import (
	"fmt"
	"os"
	"strings"

	"inkwell/service"
)

const cliVersion = "1.0.0"

// exit is swappable so tests can observe the exit code.
var exit = os.Exit

func main() {
	RealMain()
}

// RealMain dispatches CLI subcommands. Split from main for testing.
func RealMain() {
	if len(os.Args) < 2 {
		printHelp()
		exit(1)
		return
	}

	switch strings.ToLower(os.Args[1]) {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("inkwell version %s\n", cliVersion)
	case "serve":
		service.RunAppServer()
	case "init":
		service.RunInit()
	case "clean":
		service.RunClean()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		exit(1)
	}
}

func printHelp() {
	helpText := `Usage: inkwell <command>

Commands:
  help       Display this help message.
  version    Show version information.
  serve      Run the blog service (API plus static client assets).
  init       Create the database file, schema, and seed post.
  clean      Delete all posts from the database.

Environment:
  PORT              HTTP listen port (default 8080)
  DB_PATH           SQLite database file (default data/blog.db)
  STATIC_DIR        Directory of client assets served at / (default public)
  SHUTDOWN_TIMEOUT  Graceful shutdown budget (default 5s)
`
	fmt.Println(helpText)
}
