package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dom/wardle/internal/config"
	"github.com/dom/wardle/internal/domain"
	"github.com/dom/wardle/internal/service"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Global flags
	apiURL := "http://localhost:8080"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "play":
		playCmd(apiURL, args)
	case "state":
		stateCmd(apiURL)
	case "reset":
		resetCmd(apiURL)
	case "token":
		tokenCmd()
	case "sync":
		syncCmd(apiURL)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Wardle Simulator - Development tool for playing against a running server

USAGE:
  simulator <command> [options]

COMMANDS:
  play      Switch to a mode and guess until it is solved
  state     Print today's answers and progress
  reset     Start the day over
  token     Print an admin token signed with ADMIN_JWT_SECRET
  sync      Refetch the remote catalog (needs ADMIN_JWT_SECRET)
  help      Show this help message

ENVIRONMENT:
  API_URL           Backend API URL (default: http://localhost:8080)
  ADMIN_JWT_SECRET  Secret shared with the server for admin tokens

EXAMPLES:
  # Solve today's classic puzzle, narrowing by each verdict
  simulator play

  # Solve the ward mode with at most 5 guesses
  simulator play --mode=ward --max=5`)
}

func playCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	mode := fs.String("mode", string(domain.ModeClassic), "Mode to play")
	maxGuesses := fs.Int("max", 50, "Give up after this many guesses")
	fs.Parse(args)

	client := NewAPIClient(apiURL)
	modeID := domain.ModeID(*mode)

	fmt.Printf("=== Wardle Simulator: %s ===\n\n", modeID)

	if _, err := client.ChangeMode(modeID); err != nil {
		fmt.Printf("Failed to change mode: %v\n", err)
		os.Exit(1)
	}

	var guesses int
	var err error
	if modeID == domain.ModeClassic {
		guesses, err = playClassic(client, *maxGuesses)
	} else {
		guesses, err = playByName(client, modeID, *maxGuesses)
	}
	if err != nil {
		fmt.Printf("FAILED\n  Error: %v\n", err)
		os.Exit(1)
	}

	view, err := client.GetPresentation()
	if err != nil {
		fmt.Printf("Failed to get presentation: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("=========================================")
	if view.Complete {
		fmt.Printf("  SOLVED IN %d GUESS(ES)\n", view.Attempts)
	} else {
		fmt.Printf("  GAVE UP AFTER %d GUESS(ES)\n", guesses)
	}
	fmt.Println("=========================================")
	if view.Revealed != nil {
		fmt.Printf("  Answer: %s\n", view.Revealed.Name)
	}
	fmt.Printf("  Next reset: %s\n", view.NextReset.Local().Format("Mon Jan 2 15:04 MST"))
	fmt.Println()
}

// playClassic guesses the first remaining candidate and narrows the field
// by each verdict.
func playClassic(client *APIClient, maxGuesses int) (int, error) {
	candidates, err := client.GetChampions()
	if err != nil {
		return 0, err
	}

	state, err := client.GetState()
	if err != nil {
		return 0, err
	}
	if state.IsComplete(domain.ModeClassic) {
		return 0, nil
	}
	// Verdicts are not stored, so earlier guesses only drop out
	for _, g := range state.GuessesFor(domain.ModeClassic) {
		candidates = without(candidates, g.Name())
	}

	for i := 0; i < maxGuesses; i++ {
		if len(candidates) == 0 {
			return i, fmt.Errorf("no candidates left")
		}
		guess := candidates[0]

		outcome, err := client.SubmitGuess(guess.Name)
		if err != nil {
			return i, err
		}
		fmt.Printf("  [%d] %-16s %s\n", outcome.Attempts, guess.Name, describe(outcome))
		if outcome.Complete || !outcome.Accepted {
			return i + 1, nil
		}
		candidates = narrow(candidates, guess, outcome.Verdict)
	}
	return maxGuesses, nil
}

// playByName walks the catalog in order until a guess is correct.
func playByName(client *APIClient, mode domain.ModeID, maxGuesses int) (int, error) {
	names, err := client.GetNames(domain.CatalogFor(mode))
	if err != nil {
		return 0, err
	}

	state, err := client.GetState()
	if err != nil {
		return 0, err
	}
	for _, g := range state.GuessesFor(mode) {
		names = remove(names, g.Name())
	}

	for i := 0; i < maxGuesses && i < len(names); i++ {
		outcome, err := client.SubmitGuess(names[i])
		if err != nil {
			return i, err
		}
		fmt.Printf("  [%d] %-24s %s\n", outcome.Attempts, names[i], describe(outcome))
		if outcome.Complete || !outcome.Accepted {
			return i + 1, nil
		}
	}
	return min(maxGuesses, len(names)), nil
}

func describe(outcome *domain.GuessOutcome) string {
	switch {
	case !outcome.Accepted:
		return "rejected (" + string(outcome.Reason) + ")"
	case outcome.Correct:
		return "correct"
	case outcome.Verdict != nil:
		s := ""
		for _, attr := range domain.Attributes {
			switch outcome.Verdict[attr] {
			case domain.StatusCorrect:
				s += "G"
			case domain.StatusPartial:
				s += "Y"
			default:
				s += "."
			}
		}
		return s
	default:
		return "wrong"
	}
}

func stateCmd(apiURL string) {
	client := NewAPIClient(apiURL)

	state, err := client.GetState()
	if err != nil {
		fmt.Printf("Failed to get state: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Current mode: %s\n", state.CurrentMode)
	fmt.Printf("Last reset:   %s\n\n", state.LastReset.Local().Format("Mon Jan 2 15:04 MST"))
	for _, m := range domain.GameModes {
		status := "in progress"
		if state.IsComplete(m.ID) {
			status = "complete"
		}
		fmt.Printf("  %-10s %2d guess(es)  %s\n", m.ID, len(state.GuessesFor(m.ID)), status)
	}
}

func resetCmd(apiURL string) {
	client := NewAPIClient(apiURL)

	if _, err := client.Reset(); err != nil {
		fmt.Printf("Failed to reset: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Day reset.")
}

func adminToken() (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return service.NewAuthService(cfg.AdminJWTSecret, cfg.AdminTokenTTL).IssueAdminToken()
}

func tokenCmd() {
	token, err := adminToken()
	if err != nil {
		fmt.Printf("Failed to issue token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}

func syncCmd(apiURL string) {
	token, err := adminToken()
	if err != nil {
		fmt.Printf("Failed to issue token: %v\n", err)
		os.Exit(1)
	}

	client := NewAPIClient(apiURL)

	fmt.Print("Syncing catalog... ")
	result, err := client.SyncCatalog(token)
	if err != nil {
		fmt.Printf("FAILED\n  Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK (%d champions from %s)\n", result.Synced, result.Source)
}
