package models

// Stat is a single hero figure such as "50+ Products launched"
type Stat struct {
	Number string
	Label  string
}

// ProcessStep is one stage of the studio's process section
type ProcessStep struct {
	Number      string
	Title       string
	Description string
}

// Link is a labelled outbound link in the footer
type Link struct {
	Label string
	Href  string
}

// Site holds the static copy of the landing page
type Site struct {
	Name            string
	Tagline         string
	HeroLabel       string
	HeroTitle       string
	HeroHighlight   string
	HeroTitleSuffix string
	HeroDescription string
	Stats           []Stat
	Process         []ProcessStep
	CTATitle        string
	CTADescription  string
	CTAButton       string
	ContactEmail    string
	ContactPhone    string
	Social          []Link
	CopyrightYear   string
}

func DefaultSite() Site {
	return Site{
		Name:            "Studio",
		Tagline:         "Design studio focused on crafting exceptional digital products.",
		HeroLabel:       "Product Design Studio",
		HeroTitle:       "We craft digital",
		HeroHighlight:   "experiences",
		HeroTitleSuffix: "that solve real problems",
		HeroDescription: "From research to launch, we partner with ambitious teams to design products people actually want to use. No vanity metrics, just thoughtful solutions.",
		Stats: []Stat{
			{Number: "50+", Label: "Products launched"},
			{Number: "12", Label: "Years experience"},
			{Number: "98%", Label: "Client satisfaction"},
		},
		Process: []ProcessStep{
			{Number: "01", Title: "Discover", Description: "We start by understanding your users, business goals, and technical constraints through research and stakeholder interviews."},
			{Number: "02", Title: "Define", Description: "Synthesize insights into clear problem statements and design principles that guide all decisions moving forward."},
			{Number: "03", Title: "Design", Description: "Create and validate solutions through rapid prototyping, user testing, and iterative refinement."},
			{Number: "04", Title: "Deliver", Description: "Ship production-ready designs with detailed specs, design systems, and ongoing support for your team."},
		},
		CTATitle:       "Ready to build something great?",
		CTADescription: "Let's talk about your project and explore how we can help.",
		CTAButton:      "Start a conversation",
		ContactEmail:   "hello@studio.com",
		ContactPhone:   "+1 (555) 555-1234",
		Social: []Link{
			{Label: "Twitter", Href: "https://twitter.com/studio"},
			{Label: "Dribbble", Href: "https://dribbble.com/studio"},
			{Label: "LinkedIn", Href: "https://linkedin.com/company/studio"},
		},
		CopyrightYear: "2025",
	}
}

// PhoneHref returns the tel: URI for the contact phone, keeping only the
// leading plus sign and digits.
func (s Site) PhoneHref() string {
	out := make([]rune, 0, len(s.ContactPhone))
	for i, r := range s.ContactPhone {
		if (r >= '0' && r <= '9') || (r == '+' && i == 0) {
			out = append(out, r)
		}
	}
	return "tel:" + string(out)
}

func (s Site) CopyrightLine() string {
	return "© " + s.CopyrightYear + " " + s.Name + ". All rights reserved."
}

func (s Site) MailtoHref() string {
	return "mailto:" + s.ContactEmail
}
