// Command sundowner runs the Sundowner site server. Branding and
// credentials come from environment variables; content ships compiled
// in via the catalog package.
package main

import (
	"log"

	"github.com/okavangolabs/sundowner"
	"github.com/okavangolabs/sundowner/catalog"
)

func main() {
	reg, topics := catalog.Load()

	cfg := sundowner.SiteConfig{
		Name:        sundowner.EnvOr("SITE_NAME", "Sundowner"),
		URL:         sundowner.EnvOr("SITE_URL", "http://localhost:3000"),
		Description: sundowner.EnvOr("SITE_DESCRIPTION", "Safari planning without the brochure gloss."),
		Author:      sundowner.EnvOr("SITE_AUTHOR", "Okavango Labs"),

		Addr:         sundowner.EnvOr("ADDR", ":3000"),
		DatabasePath: sundowner.EnvOr("DATABASE_PATH", "data/subscribers.db"),

		OpsKey:        sundowner.MustEnv("OPS_KEY"),
		SessionSecret: sundowner.MustEnv("SESSION_SECRET"),
		CookieSecure:  sundowner.EnvOr("COOKIE_SECURE", "") == "true",
	}

	app := sundowner.New(cfg, reg, topics)
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
