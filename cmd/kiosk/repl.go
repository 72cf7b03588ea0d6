package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"voicekiosk/internal/catalog"
	"voicekiosk/internal/dialog"
	"voicekiosk/internal/session"
)

var (
	stateStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	kioskStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// runREPL drives an interactive order session on stdin. Plain input is
// treated as a recognized transcript; slash commands stand in for the
// collaborators the core normally talks to (presence sensor, TTS engine,
// payment terminal, touch screen).
func runREPL() error {
	var snap *catalog.Snapshot
	var watcher *fsnotify.Watcher

	var g errgroup.Group
	g.Go(func() error {
		var err error
		snap, err = loadCatalog()
		return err
	})
	g.Go(func() error {
		if cfg.CatalogPath == "" {
			return nil
		}
		var err error
		watcher, err = fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		return watcher.Add(cfg.CatalogPath)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	// The catalog is immutable while a session runs; edits on disk only mark
	// it stale and the reload happens on the next /reset.
	var catalogStale atomic.Bool
	if watcher != nil {
		defer watcher.Close()
		go func() {
			for {
				select {
				case ev, ok := <-watcher.Events:
					if !ok {
						return
					}
					if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
						catalogStale.Store(true)
						fmt.Println(noticeStyle.Render("(catalog changed on disk, will reload on /reset)"))
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return
					}
					logger.Warn("catalog watcher error", zap.Error(err))
				}
			}
		}()
	}

	ctrl := session.New(snap, sessionConfig())

	fmt.Println(noticeStyle.Render("voice kiosk simulator. /help for commands, /quit to exit."))
	speak(ctrl.CustomerDetected())
	speak(ctrl.TTSCompleted())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(stateStyle.Render(string(ctrl.State())) + " > ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if !strings.HasPrefix(line, "/") {
			out := ctrl.HandleTranscript(line)
			if out.Dropped {
				fmt.Println(errStyle.Render("(dropped: still interpreting)"))
				continue
			}
			speak(out)
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "/quit", "/exit":
			return scanner.Err()
		case "/help":
			printHelp()
		case "/state":
			fmt.Println(stateStyle.Render(string(ctrl.State())))
		case "/cart":
			printCart(ctrl)
		case "/pay":
			out := ctrl.PaymentCompleted()
			speak(out)
			if out.State == dialog.StateComplete {
				fmt.Println(noticeStyle.Render(fmt.Sprintf("order number %d", ctrl.OrderNumber())))
			}
		case "/fail":
			speak(ctrl.PaymentFailed())
		case "/retry":
			speak(ctrl.Retry())
		case "/touch":
			if len(fields) < 2 {
				fmt.Println(errStyle.Render("usage: /touch <candidate number>"))
				continue
			}
			k, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Println(errStyle.Render("usage: /touch <candidate number>"))
				continue
			}
			speak(ctrl.SelectCandidate(k))
		case "/option":
			if len(fields) < 2 {
				fmt.Println(errStyle.Render("usage: /option <option id>"))
				continue
			}
			id, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				fmt.Println(errStyle.Render("usage: /option <option id>"))
				continue
			}
			speak(ctrl.SelectOption(id))
		case "/remove":
			if len(fields) < 2 {
				fmt.Println(errStyle.Render("usage: /remove <item id>"))
				continue
			}
			id, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil || !ctrl.RemoveFromCart(id) {
				fmt.Println(errStyle.Render("no such cart item"))
				continue
			}
			printCart(ctrl)
		case "/reset":
			if catalogStale.CompareAndSwap(true, false) {
				fresh, err := loadCatalog()
				if err != nil {
					fmt.Println(errStyle.Render("catalog reload failed: " + err.Error()))
				} else {
					snap = fresh
				}
			}
			ctrl = session.New(snap, sessionConfig())
			speak(ctrl.CustomerDetected())
			speak(ctrl.TTSCompleted())
		default:
			fmt.Println(errStyle.Render("unknown command " + fields[0]))
		}
	}
	return scanner.Err()
}

func speak(out session.Outcome) {
	if out.Message != "" {
		fmt.Println(kioskStyle.Render("kiosk: " + out.Message))
	}
}

func printCart(ctrl *session.Controller) {
	items := ctrl.CartItems()
	if len(items) == 0 {
		fmt.Println(noticeStyle.Render("(cart empty)"))
		return
	}
	for _, item := range items {
		line := fmt.Sprintf("  [%d] %s", item.ID, item.Product.DisplayName(cfg.Language))
		if len(item.Options) > 0 {
			names := make([]string, len(item.Options))
			for i, opt := range item.Options {
				names[i] = opt.Name
			}
			line += " (" + strings.Join(names, ", ") + ")"
		}
		line += "  " + dialog.FormatPrice(item.TotalPrice)
		fmt.Println(line)
	}
	fmt.Println("  total " + dialog.FormatPrice(ctrl.CartTotal()))
}

func printHelp() {
	fmt.Println(`plain text        spoken transcript
/touch <n>        touch a disambiguation candidate (1-based)
/option <id>      touch an option by id
/cart             show the cart
/remove <id>      remove a cart line
/pay /fail        payment terminal result
/retry            retry after a payment failure
/reset            next customer (reloads catalog if stale)
/state            show current state
/quit             exit`)
}
