package main

import (
	"flag"
	"log"

	"github.com/neko3da4/CHRFORGE/internal/config"
)

func main() {
	kind := flag.String("kind", "client", "config kind: client|gateway")
	output := flag.String("output", "", "output path for config template")
	validate := flag.Bool("validate", false, "validate an existing config file")
	input := flag.String("input", "", "config path for validation (defaults to per-kind cmd path)")
	force := flag.Bool("force", false, "overwrite existing config file")
	flag.Parse()

	if *validate {
		path := *input
		if path == "" {
			switch *kind {
			case "client":
				path = "cmd/forgectl/client.toml"
			case "gateway":
				path = "cmd/stubgw/config.toml"
			default:
				log.Fatalf("unknown kind: %s", *kind)
			}
		}

		switch *kind {
		case "client":
			if _, err := config.LoadClientProfile(path); err != nil {
				log.Fatal(err)
			}
		case "gateway":
			if _, err := config.LoadGatewayConfig(path); err != nil {
				log.Fatal(err)
			}
		default:
			log.Fatalf("unknown kind: %s", *kind)
		}
		log.Printf("Validated %s config at %s", *kind, path)
		return
	}

	target := *output
	if target == "" {
		switch *kind {
		case "client":
			target = "cmd/forgectl/client.toml"
		case "gateway":
			target = "cmd/stubgw/config.toml"
		default:
			log.Fatalf("unknown kind: %s", *kind)
		}
	}

	if err := config.WriteTemplate(target, *kind, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s config template to %s", *kind, target)
}
