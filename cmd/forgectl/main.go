package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/neko3da4/CHRFORGE/internal/bus"
	"github.com/neko3da4/CHRFORGE/internal/client"
	"github.com/neko3da4/CHRFORGE/internal/config"
	"github.com/neko3da4/CHRFORGE/internal/credentials"
	"github.com/neko3da4/CHRFORGE/internal/endpoint"
	"github.com/neko3da4/CHRFORGE/internal/identity"
	"github.com/neko3da4/CHRFORGE/internal/logging"
	"github.com/neko3da4/CHRFORGE/internal/wire"
)

func main() {
	logging.ConfigureRuntime()
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "identity":
		err = runIdentity(os.Args[2:])
	case "headers":
		err = runHeaders(os.Args[2:])
	case "domains":
		err = runDomains(os.Args[2:])
	case "endpoints":
		err = runEndpoints(os.Args[2:])
	case "call":
		err = runCall(os.Args[2:])
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "forgectl: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "forgectl: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: forgectl <command> [flags]

commands:
  identity   show the platform identity presented upstream
  headers    show the composed request headers for a path
  domains    show the active domain routing table
  endpoints  list the registered endpoint catalog
  call       send one request through the pipeline
`)
}

func runIdentity(args []string) error {
	fs := flag.NewFlagSet("identity", flag.ContinueOnError)
	platform := fs.String("platform", string(identity.PlatformDesktopWin), "platform name")
	version := fs.String("version", "", "app version override")
	if err := fs.Parse(args); err != nil {
		return err
	}

	d, err := identity.ForPlatform(identity.Platform(strings.ToUpper(*platform)), *version)
	if err != nil {
		return err
	}
	return printJSON(map[string]any{
		"platform":     string(d.Platform),
		"app_version":  d.AppVersion,
		"os_name":      d.OSName,
		"os_version":   d.OSVersion,
		"os_model":     d.OSModel,
		"secondary":    d.Secondary,
		"app_identity": d.AppIdentity(),
		"user_agent":   d.UserAgent(),
	})
}

func runHeaders(args []string) error {
	fs := flag.NewFlagSet("headers", flag.ContinueOnError)
	platform := fs.String("platform", string(identity.PlatformDesktopWin), "platform name")
	version := fs.String("version", "", "app version override")
	path := fs.String("path", endpoint.PathNormal, "endpoint path the headers target")
	language := fs.String("language", "", "x-lal language tag")
	token := fs.String("token", "", "access token, empty for anonymous")
	if err := fs.Parse(args); err != nil {
		return err
	}

	d, err := identity.ForPlatform(identity.Platform(strings.ToUpper(*platform)), *version)
	if err != nil {
		return err
	}
	registry, err := envRegistry()
	if err != nil {
		return err
	}
	parsed, err := url.Parse(registry.URLFor(*path, ""))
	if err != nil {
		return err
	}
	return printJSON(client.ComposeHeaders(parsed.Host, "POST", d, *language, *token))
}

func runDomains(args []string) error {
	fs := flag.NewFlagSet("domains", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	domains, err := endpoint.NewDomains()
	if err != nil {
		return err
	}
	t := domains.Current()
	return printJSON(map[string]string{
		"host":         t.Host,
		"obs":          t.Obs,
		"api":          t.API,
		"access":       t.Access,
		"biz_timeline": t.BizTimeline,
	})
}

func runEndpoints(args []string) error {
	fs := flag.NewFlagSet("endpoints", flag.ContinueOnError)
	category := fs.String("category", "", "restrict to one category")
	if err := fs.Parse(args); err != nil {
		return err
	}

	registry, err := envRegistry()
	if err != nil {
		return err
	}
	var list []endpoint.Descriptor
	if *category != "" {
		list = registry.ByCategory(endpoint.Category(*category))
	} else {
		list = registry.All()
	}
	for _, d := range list {
		marker := ""
		if d.Deprecated {
			marker = " (deprecated)"
		}
		fmt.Printf("%-26s %-14s %s%s\n", d.Path, d.Category, d.Description, marker)
	}
	return nil
}

func runCall(args []string) error {
	fs := flag.NewFlagSet("call", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "forgectl config file")
	profilePath := fs.String("profile", "", "client profile file")
	credsPath := fs.String("credentials", "", "credentials file")
	path := fs.String("path", "", "endpoint path")
	method := fs.String("method", "", "method name")
	dataHex := fs.String("data", "", "inline hex request payload")
	payloadFile := fs.String("payload", "", "request payload file")
	category := fs.Int("category", 0, "protocol category (3, 4 or 5)")
	parse := fs.String("parse", "", "full, raw or named:<Struct>")
	timeoutMS := fs.Int64("timeout-ms", 0, "per-call timeout in milliseconds")
	if err := fs.Parse(args); err != nil {
		return err
	}

	settings := defaultCallSettings()
	if *cfgPath != "" {
		loaded, err := loadCallSettings(*cfgPath)
		if err != nil {
			return err
		}
		settings = loaded
	}
	settings = overlayFlags(settings, *profilePath, *credsPath, *path, *method, *category, *parse, *timeoutMS)

	if settings.Method == "" {
		return fmt.Errorf("call requires a method name")
	}

	value, err := callPayload(*dataHex, *payloadFile)
	if err != nil {
		return err
	}
	parseMode, err := parseModeFrom(settings.Parse)
	if err != nil {
		return err
	}

	d, language, timeout, err := resolveProfile(settings)
	if err != nil {
		return err
	}
	registry, err := envRegistry()
	if err != nil {
		return err
	}

	b := bus.New(log.Logger)
	store := credentials.NewFileStore(settings.CredentialsPath, b, nil)
	if settings.CredentialsPath != "" {
		if err := store.Load(); err != nil {
			return err
		}
	}
	// Rotated tokens come back as broadcasts; fold them into the store so
	// they survive the process.
	b.On(credentials.EventUpdated, func(args ...any) {
		if len(args) != 1 {
			return
		}
		if token, ok := args[0].(string); ok {
			store.SetToken(token)
		}
	})

	pipeline, err := client.New(client.Config{
		Identity:    d,
		Language:    language,
		Registry:    registry,
		Codec:       wire.Passthrough{},
		Transport:   client.NewHTTPTransport(),
		Credentials: store,
		Bus:         b,
		Recorder:    client.LogRecorder{Logger: log.Logger},
		Timeout:     timeout,
	})
	if err != nil {
		return err
	}

	result, err := pipeline.Call(context.Background(), client.CallOptions{
		Path:     settings.Path,
		Method:   settings.Method,
		Value:    value,
		Category: wire.Category(settings.Category),
		Parse:    parseMode,
	})
	if err != nil {
		return err
	}

	if settings.CredentialsPath != "" {
		if err := store.Save(); err != nil {
			return err
		}
	}

	if payload, ok := result.([]byte); ok {
		fmt.Printf("%d bytes: %s\n", len(payload), wire.HexDump(payload, len(payload)))
		return nil
	}
	return printJSON(result)
}

func overlayFlags(settings callSettings, profile, creds, path, method string, category int, parse string, timeoutMS int64) callSettings {
	if profile != "" {
		settings.ProfilePath = profile
	}
	if creds != "" {
		settings.CredentialsPath = creds
	}
	if path != "" {
		settings.Path = path
	}
	if method != "" {
		settings.Method = method
	}
	if category != 0 {
		settings.Category = category
	}
	if parse != "" {
		settings.Parse = parse
	}
	if timeoutMS > 0 {
		settings.TimeoutMS = timeoutMS
	}
	return settings
}

func resolveProfile(settings callSettings) (identity.Details, string, time.Duration, error) {
	if settings.ProfilePath == "" {
		d, err := identity.ForPlatform(identity.PlatformDesktopWin, "")
		if err != nil {
			return identity.Details{}, "", 0, err
		}
		return d, "", msToDuration(settings.TimeoutMS), nil
	}

	profile, err := config.LoadClientProfile(settings.ProfilePath)
	if err != nil {
		return identity.Details{}, "", 0, err
	}
	d, err := config.IdentityDetails(profile)
	if err != nil {
		return identity.Details{}, "", 0, err
	}
	timeout := config.Timeout(profile)
	if settings.TimeoutMS > 0 {
		timeout = msToDuration(settings.TimeoutMS)
	}
	return d, profile.Language, timeout, nil
}

func callPayload(dataHex, payloadFile string) (any, error) {
	switch {
	case dataHex != "" && payloadFile != "":
		return nil, fmt.Errorf("-data and -payload are mutually exclusive")
	case dataHex != "":
		cleaned := strings.NewReplacer(" ", "", "\n", "", "\t", "").Replace(dataHex)
		raw, err := hex.DecodeString(cleaned)
		if err != nil {
			return nil, fmt.Errorf("invalid -data hex: %w", err)
		}
		return raw, nil
	case payloadFile != "":
		raw, err := os.ReadFile(payloadFile)
		if err != nil {
			return nil, fmt.Errorf("read payload file: %w", err)
		}
		return raw, nil
	default:
		return nil, nil
	}
}

func msToDuration(ms int64) time.Duration {
	if ms <= 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

func parseModeFrom(raw string) (client.ParseMode, error) {
	switch {
	case raw == "" || raw == "full":
		return client.ParseMode{}, nil
	case raw == "raw":
		return client.ParseMode{Kind: client.ParseRaw}, nil
	case strings.HasPrefix(raw, "named:"):
		name := strings.TrimPrefix(raw, "named:")
		if name == "" {
			return client.ParseMode{}, fmt.Errorf("named parse requires a struct name")
		}
		return client.NamedParse(name), nil
	default:
		return client.ParseMode{}, fmt.Errorf("unknown parse mode: %s", raw)
	}
}

func envRegistry() (*endpoint.Registry, error) {
	domains, err := endpoint.NewDomains()
	if err != nil {
		return nil, err
	}
	return endpoint.NewDefault(domains), nil
}

func printJSON(v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(raw))
	return nil
}
