// Command starbgen discovers forcing patterns for star-battle
// puzzles by exhaustive window search and writes one JSON
// pattern library per schema family.
package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"

	"github.com/kristofer84/star-battle-patterns/patterns"
	"github.com/kristofer84/star-battle-patterns/storage"
)

var log = logrus.New()

func main() {
	var (
		boardSize     = flag.Int("size", 10, "nominal full-board side length")
		stars         = flag.Int("stars", 2, "stars per row/column/region unit")
		familyList    = flag.String("families", strings.Join(patterns.KnownFamilyIDs(), ","), "comma-separated family ids to search")
		windowList    = flag.String("windows", "4x1,2x2,3x3,4x4", "comma-separated window sizes (WxH)")
		outDir        = flag.String("out", "patterns-out", "output directory for library files")
		maxPerWindow  = flag.Int("max-per-window", patterns.DefaultMaxPerWindow, "accepted-pattern cap per family per window placement")
		probeCap      = flag.Int("probe-cap", patterns.DefaultProbeCap, "completion cap for the solvability probe")
		verifyCap     = flag.Int("verify-cap", patterns.DefaultVerifyCap, "completion cap for exhaustive verification")
		probeTimeout  = flag.Duration("probe-timeout", patterns.DefaultProbeTimeout, "timeout for the solvability probe")
		verifyTimeout = flag.Duration("verify-timeout", patterns.DefaultVerifyTimeout, "timeout for exhaustive verification")
		store         = flag.Bool("store", false, "also save libraries to cache and archive")
		profileRun    = flag.Bool("profile", false, "write a CPU profile for this run")
		verbose       = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if *profileRun {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	sizes, err := parseWindowSizes(*windowList)
	if err != nil {
		log.Fatalf("bad -windows: %v", err)
	}

	opts := patterns.Options{
		BoardSize:     *boardSize,
		StarsPerUnit:  *stars,
		Families:      splitList(*familyList),
		WindowSizes:   sizes,
		MaxPerWindow:  *maxPerWindow,
		ProbeCap:      *probeCap,
		VerifyCap:     *verifyCap,
		ProbeTimeout:  *probeTimeout,
		VerifyTimeout: *verifyTimeout,
		Log:           log,
	}

	log.WithFields(logrus.Fields{
		"size":     *boardSize,
		"stars":    *stars,
		"families": opts.Families,
		"windows":  *windowList,
	}).Info("starting pattern search")

	libs, err := patterns.Search(opts)
	if err != nil {
		log.Fatalf("search failed: %v", err)
	}

	if *store {
		cacheId, dbId, err := storage.Connect()
		if err != nil {
			log.Fatalf("storage connect failed: %v", err)
		}
		defer storage.Close()
		log.WithFields(logrus.Fields{"cache": cacheId, "db": dbId}).Info("storage connected")
	}

	for _, lib := range libs {
		path, err := patterns.WriteLibrary(*outDir, lib)
		if err != nil {
			log.Fatalf("writing %s library: %v", lib.FamilyID, err)
		}
		log.WithFields(logrus.Fields{
			"family":   lib.FamilyID,
			"patterns": len(lib.Patterns),
			"path":     path,
		}).Info("library written")
		if *store {
			if err := storage.SaveLibrary(lib); err != nil {
				log.Fatalf("storing %s library: %v", lib.FamilyID, err)
			}
		}
	}
}

// parseWindowSizes parses a comma-separated list of WxH specs.
func parseWindowSizes(list string) ([]patterns.WindowSize, error) {
	var out []patterns.WindowSize
	for _, spec := range splitList(list) {
		parts := strings.SplitN(spec, "x", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%q is not WxH", spec)
		}
		w, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("%q is not WxH: %v", spec, err)
		}
		h, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("%q is not WxH: %v", spec, err)
		}
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("%q has a non-positive dimension", spec)
		}
		out = append(out, patterns.WindowSize{Width: w, Height: h})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no window sizes given")
	}
	return out, nil
}

// splitList splits a comma-separated list, dropping empties.
func splitList(list string) []string {
	var out []string
	for _, s := range strings.Split(list, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
