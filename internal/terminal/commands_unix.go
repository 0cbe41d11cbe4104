package terminal

import (
	"sort"
	"strings"

	"github.com/termfolio/termfolio/internal/portfolio"
)

const homeDir = "/home/guest"

func unixCommands() []Command {
	return []Command{
		{Name: "ls", Usage: "ls", Desc: "List files.", Category: CategoryUnix, Handler: lines(cmdLs)},
		{Name: "cat", Usage: "cat <file>", Desc: "Print a file.", Category: CategoryUnix, Handler: lines(cmdCat)},
		{Name: "cd", Usage: "cd <dir>", Desc: "Change directory.", Category: CategoryUnix, Handler: lines(cmdCd)},
		{Name: "pwd", Usage: "pwd", Desc: "Print working directory.", Category: CategoryUnix, Handler: lines(cmdPwd)},
		{Name: "date", Usage: "date", Desc: "Show the current date and time.", Category: CategoryUnix, Handler: lines(cmdDate)},
		{Name: "sudo", Usage: "sudo <cmd>", Desc: "Try your luck.", Category: CategoryUnix, Handler: lines(cmdSudo)},
		{Name: "rm", Usage: "rm <file>", Desc: "Remove files. Or not.", Category: CategoryUnix, Handler: lines(cmdRm)},
		{Name: "exit", Aliases: []string{"quit"}, Usage: "exit", Desc: "Leave the terminal.", Category: CategoryUnix, Handler: HandlerFunc(cmdExit)},
	}
}

func fileNames() []string {
	names := make([]string, 0, len(portfolio.Files))
	for name := range portfolio.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func cmdLs(_ []string, _ Context) []Line {
	return []Line{Plain(strings.Join(fileNames(), "  "))}
}

func cmdCat(args []string, _ Context) []Line {
	if len(args) == 0 {
		return []Line{Error("usage: cat <file>")}
	}
	var out []Line
	for _, name := range args {
		content, ok := portfolio.Files[name]
		if !ok {
			out = append(out, Errorf("cat: %s: No such file or directory", name))
			continue
		}
		for _, l := range content {
			out = append(out, Plain(l))
		}
	}
	return out
}

func cmdCd(args []string, _ Context) []Line {
	if len(args) == 0 || args[0] == "~" || args[0] == homeDir {
		return nil
	}
	return []Line{Errorf("cd: %s: Permission denied. You're stuck here with me.", args[0])}
}

func cmdPwd(_ []string, _ Context) []Line {
	return []Line{Plain(homeDir)}
}

func cmdDate(_ []string, ctx Context) []Line {
	return []Line{Plain(ctx.Now.Format("Mon Jan 2 15:04:05 MST 2006"))}
}

func cmdSudo(args []string, _ Context) []Line {
	if len(args) == 0 {
		return []Line{Error("usage: sudo <command>")}
	}
	return []Line{
		Error("guest is not in the sudoers file. This incident will be reported. 🚨"),
	}
}

func cmdRm(args []string, _ Context) []Line {
	if len(args) == 0 {
		return []Line{Error("rm: missing operand")}
	}
	return []Line{Errorf("rm: cannot remove '%s': Nice try 😏", strings.Join(args, " "))}
}

func cmdExit(_ []string, _ Context) Result {
	return Result{
		Lines: []Line{Plain("Goodbye! 👋 Thanks for stopping by.")},
		Exit:  true,
	}
}
