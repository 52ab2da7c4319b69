package aeo

// Framework identifies the web framework a site is built with.
type Framework string

// Supported web frameworks.
const (
	FrameworkUnknown    Framework = "unknown"
	FrameworkNext       Framework = "next"
	FrameworkNuxt       Framework = "nuxt"
	FrameworkAstro      Framework = "astro"
	FrameworkRemix      Framework = "remix"
	FrameworkSvelteKit  Framework = "sveltekit"
	FrameworkAngular    Framework = "angular"
	FrameworkDocusaurus Framework = "docusaurus"
	FrameworkVite       Framework = "vite"
)

// FrameworkInfo describes where a framework keeps its content sources and
// its build output by default.
type FrameworkInfo struct {
	Framework  Framework `json:"framework"`
	ContentDir string    `json:"contentDir"`
	OutDir     string    `json:"outDir"`
}

// frameworkRules is checked in order; the first rule with a matching
// dependency wins.
var frameworkRules = []struct {
	deps []string
	info FrameworkInfo
}{
	{[]string{"next"}, FrameworkInfo{FrameworkNext, "app", "out"}},
	{[]string{"nuxt", "@nuxt/kit"}, FrameworkInfo{FrameworkNuxt, "content", ".output/public"}},
	{[]string{"astro", "@astrojs/astro"}, FrameworkInfo{FrameworkAstro, "src/content", "dist"}},
	{[]string{"@remix-run/dev"}, FrameworkInfo{FrameworkRemix, "app", "build/client"}},
	{[]string{"@sveltejs/kit"}, FrameworkInfo{FrameworkSvelteKit, "src", "build"}},
	{[]string{"@angular/core"}, FrameworkInfo{FrameworkAngular, "src", "dist"}},
	{[]string{"@docusaurus/core"}, FrameworkInfo{FrameworkDocusaurus, "docs", "build"}},
	{[]string{"vite"}, FrameworkInfo{FrameworkVite, "src", "dist"}},
}

// DetectFramework identifies the framework from a project's combined
// dependencies and devDependencies.
func DetectFramework(deps map[string]string) FrameworkInfo {
	for _, rule := range frameworkRules {
		for _, dep := range rule.deps {
			if deps[dep] != "" {
				return rule.info
			}
		}
	}
	return FrameworkInfo{Framework: FrameworkUnknown, ContentDir: "src", OutDir: "dist"}
}
