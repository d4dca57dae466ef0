package main

import (
	"strings"
	"time"

	"portfolio-engine/internal/scene"
	"portfolio-engine/internal/visibility"
)

// Scene coordinates: fixed logical width, content stacked vertically into
// one long page that the window scrolls over.
const (
	sceneWidth = 1280

	heroHeight     = 560
	sectionPad     = 80
	bodyLineHeight = 26
	timelineRowH   = 90
	signalCardH    = 120
	contactRowH    = 40

	wrapColumns = 86
)

// Row stagger for timeline items and signal cards.
const staggerStep = 120 * time.Millisecond

type pageRow struct {
	node   *scene.Node
	lines  []string
	reveal float64
}

type pageSection struct {
	node    *scene.Node
	heading string
	rows    []*pageRow
	reveal  float64
}

// buildPage lays the content out into animated sections with scene-space
// bounds and returns the total page height.
func buildPage(c *scene.Content) ([]*pageSection, float64) {
	var sections []*pageSection
	y := 0.0

	// Hero: title, tagline, rotating keyword drawn by the window.
	hero := &pageSection{node: scene.AnimatedSection("fade-in"), heading: c.Hero.Title}
	hero.addRow(scene.Text(c.Hero.Tagline), []string{c.Hero.Tagline})
	y = hero.place(y, heroHeight)
	sections = append(sections, hero)

	if c.Bio != "" {
		bio := &pageSection{node: scene.AnimatedSection("fade-up"), heading: "About"}
		lines := wrapText(c.Bio, wrapColumns)
		bio.addRow(scene.Text(c.Bio), lines)
		y = bio.place(y, float64(len(lines))*bodyLineHeight+2*sectionPad)
		sections = append(sections, bio)
	}

	if len(c.Timeline) > 0 {
		tl := &pageSection{node: scene.AnimatedSection("fade-up"), heading: "Timeline"}
		rowY := y + sectionPad
		for i, entry := range c.Timeline {
			node := scene.TimelineItem(time.Duration(i) * staggerStep)
			node.Bounds = rect(0, rowY, sceneWidth, timelineRowH)
			tl.addRow(node, []string{entry.Year + "  " + entry.Title, entry.Detail})
			rowY += timelineRowH
		}
		y = tl.place(y, rowY-y+sectionPad)
		sections = append(sections, tl)
	}

	if len(c.Signals) > 0 {
		sig := &pageSection{node: scene.AnimatedSection("fade-up"), heading: "Proof of Work"}
		rowY := y + sectionPad
		for i, entry := range c.Signals {
			node := scene.SignalCard(time.Duration(i) * staggerStep)
			node.Bounds = rect(0, rowY, sceneWidth, signalCardH)
			lines := []string{entry.Title, entry.Detail}
			if entry.Link != "" {
				lines = append(lines, entry.Link)
			}
			sig.addRow(node, lines)
			rowY += signalCardH
		}
		y = sig.place(y, rowY-y+sectionPad)
		sections = append(sections, sig)
	}

	if len(c.Contact) > 0 {
		contact := &pageSection{node: scene.AnimatedSection("fade-up"), heading: "Contact"}
		var lines []string
		for _, link := range c.Contact {
			lines = append(lines, link.Label+"  "+link.URL)
		}
		contact.addRow(scene.Text("contact"), lines)
		y = contact.place(y, float64(len(lines))*contactRowH+2*sectionPad)
		sections = append(sections, contact)
	}

	return sections, y
}

func (s *pageSection) addRow(node *scene.Node, lines []string) {
	row := &pageRow{node: node, lines: lines}
	s.rows = append(s.rows, row)
	s.node.Children = append(s.node.Children, node)
}

// place assigns the section bounds at y and returns the next y cursor.
func (s *pageSection) place(y, height float64) float64 {
	s.node.Bounds = rect(0, y, sceneWidth, height)
	return y + height
}

func rect(x, y, w, h float64) visibility.Rect {
	return visibility.Rect{X: x, Y: y, W: w, H: h}
}

func wrapText(s string, cols int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > cols {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
