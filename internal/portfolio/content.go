package portfolio

// Owner is the profile served by the terminal.
var Owner = Profile{
	Name:     "Pratik Thombare",
	Handle:   "pratik",
	Headline: "SDE @ Bajaj Finserv · Spring Boot developer with frontend know-how",
	Location: "Pune, India",
	About: []string{
		"I build reliable backend systems and ship pragmatic, maintainable solutions.",
		"Graduated from College of Engineering Pune (Electronics & Telecommunication).",
		"Now shipping backend systems that actually stay up (someone has to, right?).",
	},
	Facts: []Link{
		{Label: "Big fan of F1 strategy and clutch cricket finishes."},
		{Label: "Cinema buff, see what I'm watching", URL: "https://app.tvtime.com/user/51516957"},
		{Label: "Behind the scenes on Instagram", URL: "https://instagram.com/pratik.76"},
	},
	Skills: []SkillGroup{
		{Name: "Backend", Skills: []string{"Java", "Spring Boot", "REST", "Microservices", "Kafka"}},
		{Name: "Frontend", Skills: []string{"TypeScript", "React", "Tailwind CSS"}},
		{Name: "Data", Skills: []string{"PostgreSQL", "MySQL", "Redis"}},
		{Name: "Tooling", Skills: []string{"Git", "Docker", "Linux", "CI/CD"}},
	},
	Jobs: []Job{
		{
			Role:    "Software Development Engineer",
			Company: "Bajaj Finserv",
			Period:  "2024 - present",
			Points: []string{
				"Build and operate Spring Boot services on the lending platform.",
				"Own API design, observability and on-call for core flows.",
			},
		},
		{
			Role:    "Software Engineering Intern",
			Company: "Bajaj Finserv",
			Period:  "2023",
			Points: []string{
				"Shipped internal tooling in React and TypeScript.",
			},
		},
	},
	Projects: []Project{
		{
			Name:        "Parkin",
			Description: "Smart parking management system: slot allocation and availability tracking.",
			Stack:       []string{"Java", "Spring Boot", "MySQL"},
			Repo:        "https://github.com/pratikt76/Parkin",
			Demo:        "https://github.com/pratikt76/Parkin/blob/main/README.md",
		},
		{
			Name:        "VelocityCSS",
			Description: "Lightweight CSS utility framework: faster styling without the bloat.",
			Stack:       []string{"CSS", "JavaScript"},
			Repo:        "https://github.com/pratikt76/VelocityCSS",
			Demo:        "https://pratikt76.github.io/VelocityCSS/",
		},
	},
	Social: []Link{
		{Label: "GitHub", URL: "https://github.com/pratikt76"},
		{Label: "LinkedIn", URL: "https://linkedin.com/in/pratikt76"},
		{Label: "Instagram", URL: "https://instagram.com/pratik.76"},
		{Label: "Email", URL: "mailto:psthombare03@gmail.com"},
	},
	ResumeURL: "/resume.pdf",
	Email:     "psthombare03@gmail.com",
}

// Files backs the fake filesystem used by ls and cat.
var Files = map[string][]string{
	"about.txt": {
		"Backend engineer. Likes uptime, F1 and late-night debugging.",
	},
	"skills.md": {
		"# Skills",
		"Java, Spring Boot, TypeScript, React, PostgreSQL, Docker.",
	},
	"contact.txt": {
		"Type 'contact' to send a message right from this terminal.",
	},
	"secret.txt": {
		"There is no secret. Or is there? Try 'coffee'.",
	},
}
