package terminal

import (
	"fmt"
	"strings"
	"time"

	"github.com/termfolio/termfolio/internal/portfolio"
)

const bannerArt = `
 _                      __       _ _
| |_ ___ _ __ _ __ ___ / _| ___ | (_) ___
| __/ _ \ '__| '_ ' _ \ |_ / _ \| | |/ _ \
| ||  __/ |  | | | | | |  _| (_) | | | (_) |
 \__\___|_|  |_| |_| |_|_|  \___/|_|_|\___/
`

func welcome() []Line {
	out := ASCII(bannerArt)
	return append(out,
		Plain(""),
		Accent(fmt.Sprintf("Welcome to %s's portfolio terminal.", portfolio.Owner.Name)),
		Muted("Type 'help' to see what you can do. Try 'games' if you're bored."),
		Plain(""),
	)
}

func terminalCommands() []Command {
	return []Command{
		{Name: "echo", Usage: "echo <text>", Desc: "Print text.", Category: CategoryTerminal, Handler: lines(cmdEcho)},
		{Name: "neofetch", Usage: "neofetch", Desc: "System information.", Category: CategoryTerminal, Handler: lines(cmdNeofetch)},
		{Name: "uptime", Usage: "uptime", Desc: "How long this session has been open.", Category: CategoryTerminal, Handler: lines(cmdUptime)},
	}
}

func cmdEcho(args []string, _ Context) []Line {
	return []Line{Plain(strings.Join(args, " "))}
}

const neofetchLogo = `
   ____
  / __ \
 | |  | |
 | |  | |
 | |__| |
  \____/
`

func cmdNeofetch(_ []string, ctx Context) []Line {
	p := portfolio.Owner
	logo := ASCII(neofetchLogo)
	info := []Line{
		Accent(fmt.Sprintf("guest@%s", p.Handle)),
		Muted(strings.Repeat("-", len("guest@")+len(p.Handle))),
		Plain("OS:        PortfolioOS (web)"),
		Plain("Shell:     termfolio"),
		Plain("Uptime:    " + formatUptime(ctx.Now.Sub(ctx.Started))),
		Plain("Theme:     " + ctx.Theme),
		Plain("Wallpaper: " + ctx.Wallpaper),
		Plain("Role:      " + p.Headline),
		Plain("Location:  " + p.Location),
	}
	return append(logo, info...)
}

func cmdUptime(_ []string, ctx Context) []Line {
	return []Line{Plain("up " + formatUptime(ctx.Now.Sub(ctx.Started)))}
}

func formatUptime(d time.Duration) string {
	d = d.Round(time.Second)
	if d < 0 {
		d = 0
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
