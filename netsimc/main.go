// netsimc is the interactive client for netsimd.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/netsim-go/netsim/api"
)

var socketPath string

const prompt = "netsimc# "

func main() {
	flag.StringVar(&socketPath, "socket", "/tmp/netsimd.sock", "path to netsimd socket")

	flag.Parse()

	ctx := context.Background()

	client, err := api.NewClient(socketPath)
	if err != nil {
		fmt.Printf("Failed to create client: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	scanner := bufio.NewScanner(os.Stdin)

	fmt.Print(prompt)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "exit" || line == "quit" {
			return
		}

		if line != "" {
			err := run(ctx, client, line)
			if err == errQuit {
				return
			} else if err != nil {
				fmt.Printf("%% %v\n", err)
			}
		}

		fmt.Print(prompt)
	}
}

var errQuit = fmt.Errorf("quit")

func run(ctx context.Context, client *api.Client, line string) error {
	args := strings.Fields(line)

	p := newPager(os.Stdin, os.Stdout)
	defer p.flush()

	switch {
	case line == "help":
		fmt.Fprint(p, "show version          Show netsimd version\n")
		fmt.Fprint(p, "show database         Show the link-state database\n")
		fmt.Fprint(p, "show routes NODE      Show a node's forwarding table\n")
		fmt.Fprint(p, "shutdown              Stop netsimd\n")
		fmt.Fprint(p, "exit                  Exit the CLI\n")
		return nil
	case line == "show version":
		version, err := client.GetVersion(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(p, "v%s\n", version)
		return nil
	case line == "show database":
		lsas, err := client.GetDatabase(ctx)
		if err != nil {
			return err
		}

		for _, lsa := range lsas {
			_, err := io.WriteString(p, lsa.String())
			if err != nil {
				return err
			}
		}
		return nil
	case len(args) == 3 && args[0] == "show" && args[1] == "routes":
		routes, err := client.GetRoutes(ctx, args[2])
		if err != nil {
			return err
		}

		for _, r := range routes {
			fmt.Fprintf(p, "%s\n", r)
		}
		return nil
	case line == "shutdown":
		if err := client.Shutdown(ctx); err != nil {
			return err
		}

		return errQuit
	default:
		return fmt.Errorf("unknown command: %s", line)
	}
}
