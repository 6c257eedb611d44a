// Copyright (c) Koya Sakuma & AUTHORS
// SPDX-License-Identifier: MIT

package showcolor

import (
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// A Source identifies which lookup table a color entry came from.
type Source int

const (
	SourceNamed   Source = iota // the common named colors
	SourceElement               // the chemical element colors
)

func (s Source) String() string {
	switch s {
	case SourceNamed:
		return "named"
	case SourceElement:
		return "element"
	}
	return "invalid"
}

// An Entry is one row of the reverse table: an RGB key at 3-decimal
// precision, the color name it resolves to, and the table it came from.
type Entry struct {
	Key    Color
	Name   string
	Source Source
}

// Unknown is the sentinel name reported for triples the merged table does
// not contain. It is deliberately not itself a color name, so a lookup
// can never mistake a miss for a hit.
const Unknown = "Unknown"

// A colorTable is an ordered list of key/name rows. Order is semantic:
// when two rows share a key, the later row wins, and the element table as
// a whole is overlaid on top of the named table. Keys must already be at
// 3-decimal precision.
type colorTable []struct {
	key  Color
	name string
}

// namedColors maps the display colors every viewer ships with back to
// their names. Values are from the standard palette listing at
// https://pymolwiki.org/index.php/Color_Values. Note (1, 1, 0) appears
// twice ("dash" then "yellow") and (0.2, 1, 0.2) twice ("carbon" then
// "tv_green"); the later row wins within this table.
var namedColors = colorTable{
	{Color{0.5, 1.0, 1.0}, "aquamarine"},
	{Color{0.0, 0.0, 0.0}, "black"},
	{Color{0.0, 0.0, 1.0}, "blue"},
	{Color{0.85, 0.85, 1.0}, "bluewhite"},
	{Color{0.1, 0.1, 1.0}, "br0"},
	{Color{0.2, 0.1, 0.9}, "br1"},
	{Color{0.3, 0.1, 0.8}, "br2"},
	{Color{0.4, 0.1, 0.7}, "br3"},
	{Color{0.5, 0.1, 0.6}, "br4"},
	{Color{0.6, 0.1, 0.5}, "br5"},
	{Color{0.7, 0.1, 0.4}, "br6"},
	{Color{0.8, 0.1, 0.3}, "br7"},
	{Color{0.9, 0.1, 0.2}, "br8"},
	{Color{1.0, 0.1, 0.1}, "br9"},
	{Color{1.0, 0.7, 0.2}, "brightorange"},
	{Color{0.65, 0.32, 0.17}, "brown"},
	{Color{0.2, 1.0, 0.2}, "carbon"},
	{Color{0.5, 1.0, 0.0}, "chartreuse"},
	{Color{0.555, 0.222, 0.111}, "chocolate"},
	{Color{0.0, 1.0, 1.0}, "cyan"},
	{Color{0.73, 0.55, 0.52}, "darksalmon"},
	{Color{1.0, 1.0, 0.0}, "dash"},
	{Color{0.25, 0.25, 0.65}, "deepblue"},
	{Color{0.6, 0.6, 0.1}, "deepolive"},
	{Color{0.6, 0.1, 0.6}, "deeppurple"},
	{Color{1.0, 0.42, 0.42}, "deepsalmon"},
	{Color{0.1, 0.6, 0.6}, "deepteal"},
	{Color{0.1, 0.1, 0.6}, "density"},
	{Color{0.7, 0.5, 0.5}, "dirtyviolet"},
	{Color{0.698, 0.13, 0.13}, "firebrick"},
	{Color{0.2, 0.6, 0.2}, "forest"},
	{Color{0.5, 0.5, 0.5}, "gray"},
	{Color{0.0, 1.0, 0.0}, "green"},
	{Color{0.25, 1.0, 0.75}, "greencyan"},
	{Color{1.0, 0.0, 0.5}, "hotpink"},
	{Color{0.9, 0.9, 0.9}, "hydrogen"},
	{Color{0.75, 0.75, 1.0}, "lightblue"},
	{Color{1.0, 0.2, 0.8}, "lightmagenta"},
	{Color{1.0, 0.8, 0.5}, "lightorange"},
	{Color{1.0, 0.75, 0.87}, "lightpink"},
	{Color{0.4, 0.7, 0.7}, "lightteal"},
	{Color{0.5, 1.0, 0.5}, "lime"},
	{Color{0.0, 1.0, 0.5}, "limegreen"},
	{Color{0.75, 1.0, 0.25}, "limon"},
	{Color{1.0, 0.0, 1.0}, "magenta"},
	{Color{0.0, 0.5, 1.0}, "marine"},
	{Color{0.2, 0.2, 1.0}, "nitrogen"},
	{Color{0.77, 0.7, 0.0}, "olive"},
	{Color{1.0, 0.5, 0.0}, "orange"},
	{Color{1.0, 0.3, 0.3}, "oxygen"},
	{Color{0.8, 1.0, 1.0}, "palecyan"},
	{Color{0.65, 0.9, 0.65}, "palegreen"},
	{Color{1.0, 1.0, 0.5}, "paleyellow"},
	{Color{1.0, 0.65, 0.85}, "pink"},
	{Color{0.75, 0.0, 0.75}, "purple"},
	{Color{0.5, 0.0, 1.0}, "purpleblue"},
	{Color{0.7, 0.3, 0.4}, "raspberry"},
	{Color{1.0, 0.0, 0.0}, "red"},
	{Color{0.6, 0.2, 0.2}, "ruby"},
	{Color{1.0, 0.6, 0.6}, "salmon"},
	{Color{0.72, 0.55, 0.3}, "sand"},
	{Color{0.2, 0.5, 0.8}, "skyblue"},
	{Color{0.5, 0.5, 1.0}, "slate"},
	{Color{0.55, 0.7, 0.4}, "smudge"},
	{Color{0.52, 0.75, 0.0}, "splitpea"},
	{Color{0.9, 0.775, 0.25}, "sulfur"},
	{Color{0.0, 0.75, 0.75}, "teal"},
	{Color{0.3, 0.3, 1.0}, "tv_blue"},
	{Color{0.2, 1.0, 0.2}, "tv_green"},
	{Color{1.0, 0.55, 0.15}, "tv_orange"},
	{Color{1.0, 0.2, 0.2}, "tv_red"},
	{Color{1.0, 1.0, 0.2}, "tv_yellow"},
	{Color{1.0, 0.5, 1.0}, "violet"},
	{Color{0.55, 0.25, 0.6}, "violetpurple"},
	{Color{0.85, 0.2, 0.5}, "warmpink"},
	{Color{0.99, 0.82, 0.65}, "wheat"},
	{Color{1.0, 1.0, 1.0}, "white"},
	{Color{1.0, 1.0, 0.0}, "yellow"},
	{Color{1.0, 0.87, 0.37}, "yelloworange"},
}

// elementColors maps the default per-element display colors back to the
// element names. Note "deuterium" and "hydrogen" share (0.9, 0.9, 0.9);
// the later row ("hydrogen") wins.
var elementColors = colorTable{
	{Color{0.439, 0.671, 0.980}, "actinium"},
	{Color{0.749, 0.651, 0.651}, "aluminum"},
	{Color{0.329, 0.361, 0.949}, "americium"},
	{Color{0.620, 0.388, 0.710}, "antimony"},
	{Color{0.502, 0.820, 0.890}, "argon"},
	{Color{0.741, 0.502, 0.890}, "arsenic"},
	{Color{0.459, 0.310, 0.271}, "astatine"},
	{Color{0.000, 0.788, 0.000}, "barium"},
	{Color{0.541, 0.310, 0.890}, "berkelium"},
	{Color{0.761, 1.000, 0.000}, "beryllium"},
	{Color{0.620, 0.310, 0.710}, "bismuth"},
	{Color{0.878, 0.000, 0.220}, "bohrium"},
	{Color{1.000, 0.710, 0.710}, "boron"},
	{Color{0.651, 0.161, 0.161}, "bromine"},
	{Color{1.000, 0.851, 0.561}, "cadmium"},
	{Color{0.239, 1.000, 0.000}, "calcium"},
	{Color{0.631, 0.212, 0.831}, "californium"},
	{Color{0.200, 1.000, 0.200}, "carbon"},
	{Color{1.000, 1.000, 0.780}, "cerium"},
	{Color{0.341, 0.090, 0.561}, "cesium"},
	{Color{0.122, 0.941, 0.122}, "chlorine"},
	{Color{0.541, 0.600, 0.780}, "chromium"},
	{Color{0.941, 0.565, 0.627}, "cobalt"},
	{Color{0.784, 0.502, 0.200}, "copper"},
	{Color{0.471, 0.361, 0.890}, "curium"},
	{Color{0.900, 0.900, 0.900}, "deuterium"},
	{Color{0.820, 0.000, 0.310}, "dubnium"},
	{Color{0.122, 1.000, 0.780}, "dysprosium"},
	{Color{0.702, 0.122, 0.831}, "einsteinium"},
	{Color{0.000, 0.902, 0.459}, "erbium"},
	{Color{0.380, 1.000, 0.780}, "europium"},
	{Color{0.702, 0.122, 0.729}, "fermium"},
	{Color{0.702, 1.000, 1.000}, "fluorine"},
	{Color{0.259, 0.000, 0.400}, "francium"},
	{Color{0.271, 1.000, 0.780}, "gadolinium"},
	{Color{0.761, 0.561, 0.561}, "gallium"},
	{Color{0.400, 0.561, 0.561}, "germanium"},
	{Color{1.000, 0.820, 0.137}, "gold"},
	{Color{0.302, 0.761, 1.000}, "hafnium"},
	{Color{0.902, 0.000, 0.180}, "hassium"},
	{Color{0.851, 1.000, 1.000}, "helium"},
	{Color{0.000, 1.000, 0.612}, "holmium"},
	{Color{0.900, 0.900, 0.900}, "hydrogen"},
	{Color{0.651, 0.459, 0.451}, "indium"},
	{Color{0.580, 0.000, 0.580}, "iodine"},
	{Color{0.090, 0.329, 0.529}, "iridium"},
	{Color{0.878, 0.400, 0.200}, "iron"},
	{Color{0.361, 0.722, 0.820}, "krypton"},
	{Color{0.439, 0.831, 1.000}, "lanthanum"},
	{Color{0.780, 0.000, 0.400}, "lawrencium"},
	{Color{0.341, 0.349, 0.380}, "lead"},
	{Color{0.800, 0.502, 1.000}, "lithium"},
	{Color{0.000, 0.671, 0.141}, "lutetium"},
	{Color{0.541, 1.000, 0.000}, "magnesium"},
	{Color{0.612, 0.478, 0.780}, "manganese"},
	{Color{0.922, 0.000, 0.149}, "meitnerium"},
	{Color{0.702, 0.051, 0.651}, "mendelevium"},
	{Color{0.722, 0.722, 0.816}, "mercury"},
	{Color{0.329, 0.710, 0.710}, "molybdenum"},
	{Color{0.780, 1.000, 0.780}, "neodymium"},
	{Color{0.702, 0.890, 0.961}, "neon"},
	{Color{0.000, 0.502, 1.000}, "neptunium"},
	{Color{0.314, 0.816, 0.314}, "nickel"},
	{Color{0.451, 0.761, 0.788}, "niobium"},
	{Color{0.200, 0.200, 1.000}, "nitrogen"},
	{Color{0.741, 0.051, 0.529}, "nobelium"},
	{Color{0.149, 0.400, 0.588}, "osmium"},
	{Color{1.000, 0.300, 0.300}, "oxygen"},
	{Color{0.000, 0.412, 0.522}, "palladium"},
	{Color{1.000, 0.502, 0.000}, "phosphorus"},
	{Color{0.816, 0.816, 0.878}, "platinum"},
	{Color{0.000, 0.420, 1.000}, "plutonium"},
	{Color{0.671, 0.361, 0.000}, "polonium"},
	{Color{0.561, 0.251, 0.831}, "potassium"},
	{Color{0.851, 1.000, 0.780}, "praseodymium"},
	{Color{0.639, 1.000, 0.780}, "promethium"},
	{Color{0.000, 0.631, 1.000}, "protactinium"},
	{Color{0.000, 0.490, 0.000}, "radium"},
	{Color{0.259, 0.510, 0.588}, "radon"},
	{Color{0.149, 0.490, 0.671}, "rhenium"},
	{Color{0.039, 0.490, 0.549}, "rhodium"},
	{Color{0.439, 0.180, 0.690}, "rubidium"},
	{Color{0.141, 0.561, 0.561}, "ruthenium"},
	{Color{0.800, 0.000, 0.349}, "rutherfordium"},
	{Color{0.561, 1.000, 0.780}, "samarium"},
	{Color{0.902, 0.902, 0.902}, "scandium"},
	{Color{0.851, 0.000, 0.271}, "seaborgium"},
	{Color{1.000, 0.631, 0.000}, "selenium"},
	{Color{0.941, 0.784, 0.627}, "silicon"},
	{Color{0.753, 0.753, 0.753}, "silver"},
	{Color{0.671, 0.361, 0.949}, "sodium"},
	{Color{0.000, 1.000, 0.000}, "strontium"},
	{Color{0.900, 0.775, 0.250}, "sulfur"},
	{Color{0.302, 0.651, 1.000}, "tantalum"},
	{Color{0.231, 0.620, 0.620}, "technetium"},
	{Color{0.831, 0.478, 0.000}, "tellurium"},
	{Color{0.188, 1.000, 0.780}, "terbium"},
	{Color{0.651, 0.329, 0.302}, "thallium"},
	{Color{0.000, 0.729, 1.000}, "thorium"},
	{Color{0.000, 0.831, 0.322}, "thulium"},
	{Color{0.400, 0.502, 0.502}, "tin"},
	{Color{0.749, 0.761, 0.780}, "titanium"},
	{Color{0.129, 0.580, 0.839}, "tungsten"},
	{Color{0.000, 0.561, 1.000}, "uranium"},
	{Color{0.651, 0.651, 0.671}, "vanadium"},
	{Color{0.259, 0.620, 0.690}, "xenon"},
	{Color{0.000, 0.749, 0.220}, "ytterbium"},
	{Color{0.580, 1.000, 1.000}, "yttrium"},
	{Color{0.490, 0.502, 0.690}, "zinc"},
	{Color{0.580, 0.878, 0.878}, "zirconium"},
}

var (
	merged  = make(map[Color]string) // rounded RGB key to winning name
	sources = make(map[Color]Source) // rounded RGB key to winning source
	byName  = make(map[string]Color) // every name in either table to its key
	entries []Entry                  // winning rows, sorted by name
)

func init() {
	overlay := func(t colorTable, src Source) {
		for _, row := range t {
			merged[row.key] = row.name
			sources[row.key] = src
			byName[row.name] = row.key
		}
	}
	// Build the named table first, then overlay the element table, so
	// the element entry wins whenever both tables define the same key.
	overlay(namedColors, SourceNamed)
	overlay(elementColors, SourceElement)

	entries = make([]Entry, 0, len(merged))
	for _, key := range maps.Keys(merged) {
		entries = append(entries, Entry{Key: key, Name: merged[key], Source: sources[key]})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})
}

// Resolve returns the name of c in the merged reverse table, or Unknown
// if no entry matches. c is rounded to 3 decimals per channel before the
// lookup, so triples reported with float32 noise still match.
func Resolve(c Color) string {
	if name, ok := merged[c.Round()]; ok {
		return name
	}
	return Unknown
}

// Nearest returns the name of the merged-table entry whose key is
// perceptually closest to c, along with its CIE76 color distance. Unlike
// Resolve it always produces a name; it is a diagnostic aid for triples
// the table does not contain, not part of the labeling pass.
func Nearest(c Color) (name string, distance float64) {
	p := colorful.Color{R: c[0], G: c[1], B: c[2]}
	distance = math.Inf(1)
	for _, e := range entries {
		d := p.DistanceCIE76(colorful.Color{R: e.Key[0], G: e.Key[1], B: e.Key[2]})
		if math.IsNaN(d) {
			continue
		}
		if d < distance {
			distance, name = d, e.Name
		}
	}
	return name, distance
}

// Entries returns the rows of the merged reverse table sorted by name.
// The result is a copy; callers may rearrange it freely.
func Entries() []Entry { return slices.Clone(entries) }

// NamedColors returns the rows of the named-color source table in its
// listing order, including rows later overridden by the merge.
func NamedColors() []Entry { return namedColors.annotate(SourceNamed) }

// ElementColors returns the rows of the chemical-element source table in
// its listing order, including rows later overridden by the merge.
func ElementColors() []Entry { return elementColors.annotate(SourceElement) }

func (t colorTable) annotate(src Source) []Entry {
	out := make([]Entry, len(t))
	for i, row := range t {
		out[i] = Entry{Key: row.key, Name: row.name, Source: src}
	}
	return out
}
