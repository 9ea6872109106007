package domain

import (
	"fmt"
	"strings"
)

// Source identifies one of the polled feeds
type Source string

// known feeds
const (
	SourceBleepingComputer Source = "bleeping_computer"
	SourceWired            Source = "wired"
	SourceArsTechnica      Source = "ars_technica"
	SourceKrebs            Source = "krebs"
	SourceDarknetDiaries   Source = "darknet_diaries"
)

type sourceInfo struct {
	name  string
	alias string
	color int
}

var sources = map[Source]sourceInfo{
	SourceBleepingComputer: {name: "Bleeping Computer", alias: "bleeping", color: 0xFF6B6B},
	SourceWired:            {name: "WIRED", alias: "wired", color: 0x000000},
	SourceArsTechnica:      {name: "Ars Technica", alias: "ars", color: 0xFF4F00},
	SourceKrebs:            {name: "Krebs on Security", alias: "krebs", color: 0x0066CC},
	SourceDarknetDiaries:   {name: "Darknet Diaries", alias: "darknet", color: 0x1DB954},
}

// NewsSources returns news feeds in digest order
func NewsSources() []Source {
	return []Source{SourceBleepingComputer, SourceWired, SourceArsTechnica, SourceKrebs}
}

// AllSources returns news feeds followed by the episode feed
func AllSources() []Source {
	return append(NewsSources(), SourceDarknetDiaries)
}

// Name returns display name of the source
func (s Source) Name() string {
	if info, ok := sources[s]; ok {
		return info.name
	}
	return string(s)
}

// Alias returns short name used by commands
func (s Source) Alias() string {
	if info, ok := sources[s]; ok {
		return info.alias
	}
	return string(s)
}

// Color returns embed color of the source
func (s Source) Color() int {
	if info, ok := sources[s]; ok {
		return info.color
	}
	return 0x5865F2
}

// Valid reports whether the source is known
func (s Source) Valid() bool {
	_, ok := sources[s]
	return ok
}

// ParseSource resolves a source by id or alias, case-insensitive
func ParseSource(v string) (Source, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for src, info := range sources {
		if v == string(src) || v == info.alias {
			return src, nil
		}
	}
	return "", fmt.Errorf("unknown source %q", v)
}
