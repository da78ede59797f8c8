package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Main runs the command loop until the user exits or stdin closes.
func (a *App) Main(ctx context.Context) {

	fmt.Fprintln(a.out, "PhotoStudio CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "studio %s > ", a.promptName())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()

		case "signup":
			a.report(a.SignUp(ctx))
		case "signin":
			a.report(a.SignIn(ctx))
		case "demo":
			a.report(a.Demo(ctx))
		case "signout":
			a.report(a.SignOut(ctx))

		case "plans":
			a.showPlans()
		case "plan":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: plan <Free|Starter|Creator|Pro>")
				continue
			}
			a.report(a.SwitchPlan(ctx, args[0]))
		case "usage":
			a.report(a.ShowUsage(ctx))

		case "generate":
			a.report(a.GenerateImage(ctx))
		case "edit":
			a.report(a.EditImage(ctx))
		case "genvideo":
			a.report(a.GenerateVideo(ctx))

		case "gallery":
			a.report(a.ShowGallery(ctx))
		case "remove":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: remove <id>")
				continue
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				fmt.Fprintln(a.out, "Item id must be a number")
				continue
			}
			a.report(a.RemoveItem(ctx, id))

		case "platforms":
			a.showPlatforms()

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if a.isSignedIn() {
		fmt.Fprintln(a.out, "Available commands: generate, edit, genvideo, gallery, remove, usage, plans, plan, platforms, signout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: signin, signup, demo, plans, platforms, exit")
	}
}

// report prints user-facing errors without killing the REPL.
func (a *App) report(err error) {
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
	}
}
