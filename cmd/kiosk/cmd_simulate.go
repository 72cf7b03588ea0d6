package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"voicekiosk/internal/session"
)

// simulateCmd replays a scripted conversation from a file, one utterance per
// line. Lines starting with '#' are comments; '!' lines carry collaborator
// events (!pay, !fail, !retry, !reset). Useful for regression scripts
// against a real catalog.
var simulateCmd = &cobra.Command{
	Use:   "simulate [script]",
	Short: "Replay a scripted conversation",
	Args:  cobra.ExactArgs(1),
	RunE:  runSimulate,
}

func runSimulate(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	snap, err := loadCatalog()
	if err != nil {
		return err
	}

	ctrl := session.New(snap, sessionConfig())
	report(ctrl.CustomerDetected())
	report(ctrl.TTSCompleted())

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "!") {
			switch line {
			case "!pay":
				report(ctrl.PaymentCompleted())
			case "!fail":
				report(ctrl.PaymentFailed())
			case "!retry":
				report(ctrl.Retry())
			case "!reset":
				report(ctrl.Reset())
				report(ctrl.CustomerDetected())
				report(ctrl.TTSCompleted())
			default:
				return fmt.Errorf("unknown directive %q", line)
			}
			continue
		}

		fmt.Printf("customer: %s\n", line)
		report(ctrl.HandleTranscript(line))
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	fmt.Printf("final state: %s, cart lines: %d\n", ctrl.State(), len(ctrl.CartItems()))
	return nil
}

func report(out session.Outcome) {
	if out.Dropped {
		fmt.Println("  (dropped)")
		return
	}
	if out.Message != "" {
		fmt.Printf("  [%s] %s\n", out.State, out.Message)
	} else {
		fmt.Printf("  [%s]\n", out.State)
	}
}
