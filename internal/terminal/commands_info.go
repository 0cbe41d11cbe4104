package terminal

import (
	"fmt"
	"strings"

	"github.com/termfolio/termfolio/internal/portfolio"
)

func infoCommands() []Command {
	return []Command{
		{Name: "about", Usage: "about", Desc: "Who I am.", Category: CategoryInfo, Handler: lines(cmdAbout)},
		{Name: "skills", Usage: "skills", Desc: "Languages, frameworks and tools.", Category: CategoryInfo, Handler: lines(cmdSkills)},
		{Name: "experience", Aliases: []string{"exp"}, Usage: "experience", Desc: "Where I've worked.", Category: CategoryInfo, Handler: lines(cmdExperience)},
		{Name: "projects", Aliases: []string{"proj"}, Usage: "projects", Desc: "Things I've built.", Category: CategoryInfo, Handler: lines(cmdProjects)},
		{Name: "social", Aliases: []string{"links"}, Usage: "social", Desc: "Find me elsewhere.", Category: CategoryInfo, Handler: lines(cmdSocial)},
		{Name: "resume", Aliases: []string{"cv"}, Usage: "resume", Desc: "Download my resume.", Category: CategoryInfo, Handler: lines(cmdResume)},
		{Name: "contact", Usage: "contact", Desc: "Send me a message from here.", Category: CategoryInfo, Handler: HandlerFunc(startContact)},
	}
}

func cmdAbout(_ []string, _ Context) []Line {
	p := portfolio.Owner
	out := []Line{
		Accent(fmt.Sprintf("👋 Hey, I'm %s", p.Name)),
		Muted(p.Headline),
		Muted("📍 " + p.Location),
		Plain(""),
	}
	for _, s := range p.About {
		out = append(out, Plain(s))
	}
	out = append(out, Plain(""))
	for _, f := range p.Facts {
		if f.URL != "" {
			out = append(out, Link("• "+f.Label, f.URL))
			continue
		}
		out = append(out, Plain("• "+f.Label))
	}
	return out
}

func cmdSkills(_ []string, _ Context) []Line {
	var out []Line
	for _, g := range portfolio.Owner.Skills {
		out = append(out,
			Accent(g.Name),
			Plain("  "+strings.Join(g.Skills, " · ")),
		)
	}
	return out
}

func cmdExperience(_ []string, _ Context) []Line {
	var out []Line
	for i, j := range portfolio.Owner.Jobs {
		if i > 0 {
			out = append(out, Plain(""))
		}
		out = append(out,
			Accent(fmt.Sprintf("%s @ %s", j.Role, j.Company)),
			Muted(j.Period),
		)
		for _, pt := range j.Points {
			out = append(out, Plain("  • "+pt))
		}
	}
	return out
}

func cmdProjects(_ []string, _ Context) []Line {
	var out []Line
	for i, p := range portfolio.Owner.Projects {
		if i > 0 {
			out = append(out, Plain(""))
		}
		out = append(out,
			Accent("🚀 "+p.Name),
			Plain(p.Description),
			Muted("Stack: "+strings.Join(p.Stack, ", ")),
		)
		if p.Repo != "" {
			out = append(out, Link("  GitHub ↗", p.Repo))
		}
		if p.Demo != "" {
			out = append(out, Link("  Live demo ↗", p.Demo))
		}
	}
	return out
}

func cmdSocial(_ []string, _ Context) []Line {
	out := make([]Line, 0, len(portfolio.Owner.Social))
	for _, l := range portfolio.Owner.Social {
		out = append(out, Link(fmt.Sprintf("%-10s %s", l.Label, strings.TrimPrefix(l.URL, "mailto:")), l.URL))
	}
	return out
}

func cmdResume(_ []string, _ Context) []Line {
	return []Line{
		Plain("📄 Grab a copy of my resume:"),
		Link("resume.pdf ↗", portfolio.Owner.ResumeURL),
	}
}
