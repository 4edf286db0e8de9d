package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	wrapgen "github.com/goliatone/go-wrapgen"
	"github.com/goliatone/go-wrapgen/pkg/generate"
	pkgmanifest "github.com/goliatone/go-wrapgen/pkg/manifest"
	"github.com/goliatone/go-wrapgen/pkg/wrapper"
)

type violation struct {
	file     string
	location string
	message  string
}

func main() {
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [paths...]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nLint component manifests for names the generated wrappers reserve.\n"); err != nil {
			panic(err)
		}
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{
			"examples/fixtures/components.json",
		}
	}

	ctx := context.Background()
	parser := wrapgen.NewParser()

	var (
		violations []violation
	)
	for _, path := range paths {
		linted, err := lintFile(ctx, parser, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", path, err)
			os.Exit(1)
		}
		violations = append(violations, linted...)
	}

	if len(violations) > 0 {
		sort.Slice(violations, func(i, j int) bool {
			if violations[i].file == violations[j].file {
				if violations[i].location == violations[j].location {
					return violations[i].message < violations[j].message
				}
				return violations[i].location < violations[j].location
			}
			return violations[i].file < violations[j].file
		})
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "%s: %s -> %s\n", v.file, v.location, v.message)
		}
		os.Exit(1)
	}
}

func lintFile(ctx context.Context, parser pkgmanifest.Parser, path string) ([]violation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	doc, err := pkgmanifest.NewDocument(pkgmanifest.SourceFromFile(path), raw)
	if err != nil {
		return nil, fmt.Errorf("construct document: %w", err)
	}

	components, err := parser.Components(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("parse components: %w", err)
	}

	var result []violation
	for _, component := range components {
		result = append(result, lintComponent(path, component)...)
	}

	return result, nil
}

func lintComponent(file string, component pkgmanifest.Component) []violation {
	var result []violation
	base := []string{"component", component.Tag}

	if !strings.Contains(component.Tag, "-") {
		result = append(result, violation{
			file:     file,
			location: formatLocation(base),
			message:  fmt.Sprintf("tag %q is not a custom element name (needs a dash)", component.Tag),
		})
	}

	seenProps := make(map[string]struct{}, len(component.Properties))
	for _, prop := range component.Properties {
		location := formatLocation(appendPath(base, "properties."+prop.Name))
		if _, dup := seenProps[prop.Name]; dup {
			result = append(result, violation{
				file:     file,
				location: location,
				message:  fmt.Sprintf("property %q declared twice", prop.Name),
			})
			continue
		}
		seenProps[prop.Name] = struct{}{}

		if wrapper.Reserved(prop.Name) {
			result = append(result, violation{
				file:     file,
				location: location,
				message:  fmt.Sprintf("property %q collides with a reserved wrapper name", prop.Name),
			})
		}
	}

	seenEvents := make(map[string]struct{}, len(component.Events))
	aliases := make(map[string]string, len(component.Events))
	for _, event := range component.Events {
		location := formatLocation(appendPath(base, "events."+event.Name))
		if _, dup := seenEvents[event.Name]; dup {
			result = append(result, violation{
				file:     file,
				location: location,
				message:  fmt.Sprintf("event %q declared twice", event.Name),
			})
			continue
		}
		seenEvents[event.Name] = struct{}{}

		if wrapper.Reserved(event.Name) {
			result = append(result, violation{
				file:     file,
				location: location,
				message:  fmt.Sprintf("event %q collides with a reserved wrapper name", event.Name),
			})
		}

		alias := generate.KebabName(event.Name)
		if declarer, dup := aliases[alias]; dup {
			result = append(result, violation{
				file:     file,
				location: location,
				message:  fmt.Sprintf("event %q shares the emitted alias %q with event %q", event.Name, alias, declarer),
			})
			continue
		}
		aliases[alias] = event.Name
	}

	return result
}

func appendPath(path []string, segment string) []string {
	next := append([]string(nil), path...)
	next = append(next, segment)
	return next
}

func formatLocation(path []string) string {
	return strings.Join(path, " > ")
}
