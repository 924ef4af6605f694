// Package site holds the marketing copy of the home page and the workshop
// contact details shared with the commission form.
package site

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Card is a titled paragraph: a value, a process step or a portfolio piece.
type Card struct {
	Title       string `json:"title"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

type Section struct {
	Eyebrow    string   `json:"eyebrow"`
	Heading    string   `json:"heading"`
	Lead       string   `json:"lead,omitempty"`
	Paragraphs []string `json:"paragraphs,omitempty"`
	Cards      []Card   `json:"cards,omitempty"`
	Note       string   `json:"note,omitempty"`
}

// Contact is how visitors reach the workshop.
type Contact struct {
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Location   []string `json:"location"`
	Hours      []string `json:"hours"`
	BookingURL string   `json:"bookingUrl"`
}

// PhoneHref returns a tel: link for the phone number.
func (c Contact) PhoneHref() string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, c.Phone)
	if len(digits) == 10 {
		digits = "1" + digits
	}
	return "tel:+" + digits
}

// Option is one entry of the marketing contact form's project list.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Content struct {
	Name        string   `json:"name"`
	Tagline     string   `json:"tagline"`
	Nav         []Link   `json:"nav"`
	About       Section  `json:"about"`
	Founder     string   `json:"founder"`
	FounderRole string   `json:"founderRole"`
	Values      Section  `json:"values"`
	Process     Section  `json:"process"`
	Portfolio   Section  `json:"portfolio"`
	ContactCopy Section  `json:"contactCopy"`
	Expect      []string `json:"expect"`
	Projects    []Option `json:"projects"`
	Footer      string   `json:"footer"`
	Contact     Contact  `json:"contact"`
}

// Settings are the deployment-specific parts of the content.
type Settings struct {
	Email      string
	Phone      string
	BookingURL string
}

// New returns the site content with settings applied over the defaults.
func New(s Settings) Content {
	c := defaultContent()
	if s.Email != "" {
		c.Contact.Email = s.Email
	}
	if s.Phone != "" {
		c.Contact.Phone = s.Phone
	}
	if s.BookingURL != "" {
		c.Contact.BookingURL = s.BookingURL
	}
	return c
}

func defaultContent() Content {
	return Content{
		Name:    "Living Grain Co.",
		Tagline: "Custom woodworking craftsmanship",
		Nav: []Link{
			{Label: "About", Href: "#about"},
			{Label: "Process", Href: "#process"},
			{Label: "Portfolio", Href: "#portfolio"},
			{Label: "Contact", Href: "/custom-request"},
		},
		About: Section{
			Eyebrow: "About Living Grain Co.",
			Heading: "Craftsmanship Rooted in Tradition",
			Paragraphs: []string{
				"Founded by Seth Lopez, Living Grain Co. emerged from a deep reverence for the natural world " +
					"and a passion for preserving traditional woodworking techniques in an increasingly automated age.",
				"Every grain pattern tells a story of seasons past. Every joint represents hours of careful " +
					"consideration. We don't just build furniture. We create functional heirlooms that honor the " +
					"tree's journey from forest to your home.",
				"Our workshop is a sanctuary where time slows down. We work with sustainably sourced hardwoods, " +
					"ensuring that our creations leave a positive legacy for generations to come.",
			},
		},
		Founder:     "Seth Lopez",
		FounderRole: "Founder & Master Craftsman",
		Values: Section{
			Eyebrow: "Our Values",
			Heading: "What Sets Us Apart",
			Lead:    "These principles guide every decision we make, from selecting timber to applying the final finish.",
			Cards: []Card{
				{
					Title:       "Sustainable Sourcing",
					Description: "We partner with responsible forestry operations and urban wood salvage programs, ensuring every board has an ethical origin.",
				},
				{
					Title:       "Uncompromising Quality",
					Description: "No shortcuts. No compromises. Every joint is hand-fit, every surface hand-finished to museum-quality standards.",
				},
				{
					Title:       "Built for Generations",
					Description: "Your great-grandchildren will use these pieces. We build with the same integrity cabinetmakers used centuries ago.",
				},
				{
					Title:       "Natural Beauty",
					Description: "We celebrate wood in its truest form: minimal processing and natural finishes that enhance rather than hide the grain.",
				},
			},
		},
		Process: Section{
			Eyebrow: "Our Process",
			Heading: "From Concept to Heirloom",
			Lead:    "Each piece follows a meticulous journey that honors both tradition and your unique vision.",
			Cards: []Card{
				{
					Title:       "Consultation & Vision",
					Description: "We begin by understanding your space, your needs and your aesthetic. Every great piece starts with a conversation about how you live and what you value.",
				},
				{
					Title:       "Design & Material Selection",
					Description: "Together, we select the perfect hardwood, each board hand-chosen for its grain and character. Detailed drawings ensure your vision translates into reality.",
				},
				{
					Title:       "Handcrafted Construction",
					Description: "Using time-honored joinery techniques and modern precision, we bring your piece to life. Every mortise, tenon and dovetail is cut with exacting care.",
				},
				{
					Title:       "Finishing & Delivery",
					Description: "Multiple coats of hand-rubbed finish protect the wood while allowing its natural beauty to shine. Your heirloom is delivered and installed with the same care it was built.",
				},
			},
		},
		Portfolio: Section{
			Eyebrow: "Portfolio",
			Heading: "Recent Commissions",
			Lead:    "Each piece represents a unique collaboration between craftsman and client.",
			Cards: []Card{
				{Title: "Live Edge Dining Table", Category: "Tables", Description: "Black walnut slab with natural edge, seats 8"},
				{Title: "Custom Cabinet Suite", Category: "Cabinetry", Description: "Quarter-sawn white oak with hand-cut dovetails"},
				{Title: "Artisan Credenza", Category: "Storage", Description: "Mid-century inspired design in solid cherry"},
				{Title: "Heirloom Details", Category: "Craftsmanship", Description: "Hand-planed surfaces reveal exceptional grain"},
			},
			Note: "Every commission is a journey. We work closely with our clients to ensure each piece " +
				"not only meets their functional needs but becomes a cherished part of their story.",
		},
		ContactCopy: Section{
			Eyebrow: "Get in Touch",
			Heading: "Let's Create Something Extraordinary",
			Lead:    "Ready to commission a piece that will be treasured for generations? We'd love to hear about your vision.",
		},
		Expect: []string{
			"Initial consultation within 48 hours",
			"Custom design drawings and material selection",
			"Transparent pricing with no hidden fees",
			"Build time: 8-12 weeks for most commissions",
			"White-glove delivery and installation",
		},
		Projects: []Option{
			{Value: "dining-table", Label: "Dining Table"},
			{Value: "cabinetry", Label: "Cabinetry"},
			{Value: "desk", Label: "Desk"},
			{Value: "shelving", Label: "Shelving"},
			{Value: "bed-frame", Label: "Bed Frame"},
			{Value: "other", Label: "Other Custom Piece"},
		},
		Footer: "Crafting heirloom-quality furniture that honors the natural beauty of wood and stands the test of time.",
		Contact: Contact{
			Email:    "seth@livinggrainco.com",
			Phone:    "(555) 123-4567",
			Location: []string{"Pacific Northwest", "By Appointment Only"},
			Hours: []string{
				"Monday - Friday: 9:00 AM - 5:00 PM",
				"Saturday - Sunday: By appointment",
			},
			BookingURL: "https://calendly.com/livinggrainco/30min",
		},
	}
}

var (
	ErrMissingField = errors.New("missing required field")
	ErrInvalidEmail = errors.New("invalid email address")
)

// Inquiry is a submission of the home page contact form. It is
// acknowledged and logged, never delivered anywhere.
type Inquiry struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	ProjectType string `json:"projectType,omitempty"`
	Message     string `json:"message"`
}

// Validate trims the inquiry and checks the fields the form requires.
func (in *Inquiry) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.ProjectType = strings.TrimSpace(in.ProjectType)
	in.Message = strings.TrimSpace(in.Message)

	for _, f := range []struct{ name, value string }{
		{"name", in.Name},
		{"email", in.Email},
		{"message", in.Message},
	} {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidEmail, in.Email)
	}
	return nil
}
