package css

// The built-in property catalog. Descriptors are declared once and shared
// between every property name that admits the same value shape, so schema
// composition can rely on descriptor identity as well as value equality.
//
// Spec references:
// - CSS 2.1 property index: https://www.w3.org/TR/CSS21/propidx.html
// - CSS Color Module Level 3 §4.3 Extended color keywords: https://www.w3.org/TR/css-color-3/#svg-color
// - CSS Backgrounds and Borders Level 3: https://www.w3.org/TR/css-backgrounds-3/

func set(elems ...string) map[string]bool {
	m := make(map[string]bool, len(elems))
	for _, e := range elems {
		m[e] = true
	}
	return m
}

func union(sets ...map[string]bool) map[string]bool {
	m := make(map[string]bool)
	for _, s := range sets {
		for e := range s {
			m[e] = true
		}
	}
	return m
}

func fns(pairs ...string) map[string]string {
	m := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		m[pairs[i]] = pairs[i+1]
	}
	return m
}

// allowedUnits are the dimension units a quantity may carry. A dimension
// with any other unit is rejected outright.
var allowedUnits = set(
	"em", "ex", "ch", "rem",
	"vw", "vh", "vmin", "vmax",
	"cm", "mm", "q", "in", "pt", "pc", "px",
	"deg", "grad", "rad", "turn",
	"s", "ms",
	"hz", "khz",
	"dpi", "dpcm", "dppx",
	"fr",
)

// Named colors: the CSS 2.1 set plus the extended keywords seen in real
// style attributes.
var colorLiterals = set(
	"aqua", "black", "blue", "fuchsia", "gray", "grey", "green", "lime",
	"maroon", "navy", "olive", "orange", "purple", "red", "silver", "teal",
	"white", "yellow",
	"aliceblue", "antiquewhite", "aquamarine", "azure", "beige", "bisque",
	"blanchedalmond", "blueviolet", "brown", "burlywood", "cadetblue",
	"chartreuse", "chocolate", "coral", "cornflowerblue", "cornsilk",
	"crimson", "cyan", "darkblue", "darkcyan", "darkgoldenrod", "darkgray",
	"darkgreen", "darkkhaki", "darkmagenta", "darkolivegreen", "darkorange",
	"darkorchid", "darkred", "darksalmon", "darkseagreen", "darkslateblue",
	"darkslategray", "darkturquoise", "darkviolet", "deeppink", "deepskyblue",
	"dimgray", "dodgerblue", "firebrick", "floralwhite", "forestgreen",
	"gainsboro", "ghostwhite", "gold", "goldenrod", "greenyellow", "honeydew",
	"hotpink", "indianred", "indigo", "ivory", "khaki", "lavender",
	"lavenderblush", "lawngreen", "lemonchiffon", "lightblue", "lightcoral",
	"lightcyan", "lightgoldenrodyellow", "lightgreen", "lightgrey",
	"lightpink", "lightsalmon", "lightseagreen", "lightskyblue",
	"lightslategray", "lightsteelblue", "lightyellow", "limegreen", "linen",
	"magenta", "mediumaquamarine", "mediumblue", "mediumorchid",
	"mediumpurple", "mediumseagreen", "mediumslateblue", "mediumspringgreen",
	"mediumturquoise", "mediumvioletred", "midnightblue", "mintcream",
	"mistyrose", "moccasin", "navajowhite", "oldlace", "olivedrab",
	"orangered", "orchid", "palegoldenrod", "palegreen", "paleturquoise",
	"palevioletred", "papayawhip", "peachpuff", "peru", "pink", "plum",
	"powderblue", "rosybrown", "royalblue", "saddlebrown", "salmon",
	"sandybrown", "seagreen", "seashell", "sienna", "skyblue", "slateblue",
	"slategray", "snow", "springgreen", "steelblue", "tan", "thistle",
	"tomato", "turquoise", "violet", "wheat", "whitesmoke", "yellowgreen",
)

var (
	inheritLit = set("inherit")
	comma      = set(",")

	colorFns = fns(
		"rgb(", "rgb()",
		"rgba(", "rgba()",
		"hsl(", "hsl()",
		"hsla(", "hsla()",
	)
	imageFns = fns(
		"image(", "image()",
		"linear-gradient(", "linear-gradient()",
		"radial-gradient(", "radial-gradient()",
		"repeating-linear-gradient(", "repeating-linear-gradient()",
		"repeating-radial-gradient(", "repeating-radial-gradient()",
	)

	borderStyleLiterals = set(
		"none", "hidden", "dotted", "dashed", "solid", "double",
		"groove", "ridge", "inset", "outset",
	)
	borderWidthLiterals = set("thin", "medium", "thick")
	positionLiterals    = set("top", "bottom", "left", "right", "center")
	repeatLiterals      = set("repeat", "repeat-x", "repeat-y", "no-repeat", "space", "round")
	genericFamilies     = set("serif", "sans-serif", "cursive", "fantasy", "monospace")
	fontStyleLiterals   = set("normal", "italic", "oblique")
	fontVariantLiterals = set("normal", "small-caps")
	fontWeightLiterals  = set("normal", "bold", "bolder", "lighter")
	fontSizeLiterals    = set(
		"xx-small", "x-small", "small", "medium", "large", "x-large",
		"xx-large", "smaller", "larger",
	)
	fontStretchLiterals = set(
		"normal", "wider", "narrower", "ultra-condensed", "extra-condensed",
		"condensed", "semi-condensed", "semi-expanded", "expanded",
		"extra-expanded", "ultra-expanded",
	)
)

// Shared descriptors. Several property names point at the same descriptor;
// the alias keeps value-equality semantics under Union while avoiding a
// second copy of the literal sets.
var (
	colorProp = &Property{
		Bits:     BitHashValue,
		Literals: union(colorLiterals, set("currentcolor", "transparent", "inherit")),
		FnKeys:   colorFns,
	}

	colorFnProp = &Property{
		Bits:     BitQuantity | BitNegative,
		Literals: comma,
	}

	imageProp = &Property{
		Bits:     BitURL | BitString | BitHashValue,
		Literals: union(colorLiterals, comma, set("none")),
		FnKeys:   union2(colorFns, imageFns),
	}

	gradientProp = &Property{
		Bits: BitQuantity | BitNegative | BitHashValue,
		Literals: union(colorLiterals, comma, set(
			"to", "at", "top", "bottom", "left", "right", "center",
			"circle", "ellipse",
			"closest-corner", "closest-side", "farthest-corner", "farthest-side",
			"transparent", "currentcolor",
		)),
		FnKeys: colorFns,
	}

	rectProp = &Property{
		Bits:     BitQuantity,
		Literals: union(comma, set("auto")),
	}

	borderStyleProp = &Property{
		Bits:     0,
		Literals: union(borderStyleLiterals, inheritLit),
	}

	borderWidthProp = &Property{
		Bits:     BitQuantity,
		Literals: union(borderWidthLiterals, inheritLit),
	}

	borderShorthandProp = &Property{
		Bits: BitQuantity | BitHashValue,
		Literals: union(colorLiterals, borderStyleLiterals, borderWidthLiterals,
			set("currentcolor", "transparent", "inherit")),
		FnKeys: colorFns,
	}

	radiusProp = &Property{
		Bits:     BitQuantity,
		Literals: set("/", "inherit"),
	}

	lengthProp = &Property{
		Bits:     BitQuantity,
		Literals: inheritLit,
	}

	signedLengthProp = &Property{
		Bits:     BitQuantity | BitNegative,
		Literals: inheritLit,
	}

	marginProp = &Property{
		Bits:     BitQuantity | BitNegative,
		Literals: set("auto", "inherit"),
	}

	sizeProp = &Property{
		Bits:     BitQuantity,
		Literals: set("auto", "inherit"),
	}

	maxSizeProp = &Property{
		Bits:     BitQuantity,
		Literals: set("none", "inherit"),
	}

	backgroundProp = &Property{
		Bits: BitQuantity | BitNegative | BitHashValue | BitURL | BitString,
		Literals: union(colorLiterals, positionLiterals, repeatLiterals, comma, set(
			"scroll", "fixed", "local", "none",
			"currentcolor", "transparent", "inherit", "/",
		)),
		FnKeys: union2(colorFns, imageFns),
	}

	backgroundPositionProp = &Property{
		Bits:     BitQuantity | BitNegative,
		Literals: union(positionLiterals, comma, inheritLit),
	}

	backgroundRepeatProp = &Property{
		Bits:     0,
		Literals: union(repeatLiterals, comma, inheritLit),
	}

	backgroundAttachmentProp = &Property{
		Bits:     0,
		Literals: union(comma, set("scroll", "fixed", "local", "inherit")),
	}

	fontProp = &Property{
		Bits: BitQuantity | BitString | BitUnreservedWord,
		Literals: union(genericFamilies, fontStyleLiterals, fontVariantLiterals,
			fontWeightLiterals, fontSizeLiterals, comma, set("/", "caption",
				"icon", "menu", "message-box", "small-caption", "status-bar",
				"inherit")),
	}

	fontFamilyProp = &Property{
		Bits:     BitString | BitUnreservedWord,
		Literals: union(genericFamilies, comma, inheritLit),
	}

	fontSizeProp = &Property{
		Bits:     BitQuantity,
		Literals: union(fontSizeLiterals, inheritLit),
	}

	fontStyleProp = &Property{
		Bits:     0,
		Literals: union(fontStyleLiterals, inheritLit),
	}

	fontVariantProp = &Property{
		Bits:     0,
		Literals: union(fontVariantLiterals, inheritLit),
	}

	fontWeightProp = &Property{
		Bits:     BitQuantity,
		Literals: union(fontWeightLiterals, inheritLit),
	}

	fontStretchProp = &Property{
		Bits:     0,
		Literals: fontStretchLiterals,
	}

	shadowProp = &Property{
		Bits:     BitQuantity | BitNegative | BitHashValue,
		Literals: union(colorLiterals, comma, set("inset", "none", "currentcolor", "transparent")),
		FnKeys:   colorFns,
	}

	listStyleProp = &Property{
		Bits: BitURL,
		Literals: union(listStyleTypeLiterals, set(
			"inside", "outside", "none", "inherit")),
	}

	listStyleImageProp = &Property{
		Bits:     BitURL,
		Literals: set("none", "inherit"),
	}

	unicodeRangeProp = &Property{
		Bits:     BitUnicodeRange,
		Literals: comma,
	}
)

var listStyleTypeLiterals = set(
	"disc", "circle", "square", "decimal", "decimal-leading-zero",
	"lower-roman", "upper-roman", "lower-greek", "lower-latin",
	"upper-latin", "armenian", "georgian", "lower-alpha", "upper-alpha",
	"none",
)

// union2 merges fn key maps the way union merges literal sets.
func union2(ms ...map[string]string) map[string]string {
	m := make(map[string]string)
	for _, src := range ms {
		for k, v := range src {
			m[k] = v
		}
	}
	return m
}

func keywords(words ...string) *Property {
	return &Property{Literals: set(words...)}
}

// definitions is the full built-in catalog available to WithProperties.
// It is a superset of the default whitelist.
var definitions = map[string]*Property{
	"azimuth": {
		Bits: BitQuantity | BitNegative,
		Literals: set("left-side", "far-left", "left", "center-left",
			"center", "center-right", "right", "far-right", "right-side",
			"behind", "leftwards", "rightwards", "inherit"),
	},
	"background":            backgroundProp,
	"background-attachment": backgroundAttachmentProp,
	"background-color":      colorProp,
	"background-image":      imageProp,
	"background-position":   backgroundPositionProp,
	"background-repeat":     backgroundRepeatProp,

	"border":              borderShorthandProp,
	"border-top":          borderShorthandProp,
	"border-right":        borderShorthandProp,
	"border-bottom":       borderShorthandProp,
	"border-left":         borderShorthandProp,
	"border-color":        colorProp,
	"border-top-color":    colorProp,
	"border-right-color":  colorProp,
	"border-bottom-color": colorProp,
	"border-left-color":   colorProp,
	"border-style":        borderStyleProp,
	"border-top-style":    borderStyleProp,
	"border-right-style":  borderStyleProp,
	"border-bottom-style": borderStyleProp,
	"border-left-style":   borderStyleProp,
	"border-width":        borderWidthProp,
	"border-top-width":    borderWidthProp,
	"border-right-width":  borderWidthProp,
	"border-bottom-width": borderWidthProp,
	"border-left-width":   borderWidthProp,

	"border-radius":             radiusProp,
	"border-top-left-radius":    radiusProp,
	"border-top-right-radius":   radiusProp,
	"border-bottom-left-radius": radiusProp,
	"border-bottom-right-radius": radiusProp,
	// Legacy Gecko corner spellings; the generic vendor-prefix fallback
	// cannot reach these because the unprefixed remainder is not a
	// property name.
	"-moz-border-radius-topleft":     radiusProp,
	"-moz-border-radius-topright":    radiusProp,
	"-moz-border-radius-bottomleft":  radiusProp,
	"-moz-border-radius-bottomright": radiusProp,

	"border-collapse": keywords("collapse", "separate", "inherit"),
	"border-spacing":  lengthProp,

	"box-shadow": shadowProp,

	"caption-side": keywords("top", "bottom", "inherit"),
	"clear":        keywords("none", "left", "right", "both", "inherit"),
	"clip": {
		Literals: set("auto", "inherit"),
		FnKeys:   fns("rect(", "rect()"),
	},
	"color": colorProp,
	"cue": {
		Bits:     BitURL,
		Literals: set("none", "inherit"),
	},
	"cue-after": {
		Bits:     BitURL,
		Literals: set("none", "inherit"),
	},
	"cue-before": {
		Bits:     BitURL,
		Literals: set("none", "inherit"),
	},
	"cursor": {
		Bits: BitURL,
		Literals: union(comma, set("auto", "crosshair", "default", "pointer",
			"move", "e-resize", "ne-resize", "nw-resize", "n-resize",
			"se-resize", "sw-resize", "s-resize", "w-resize", "text", "wait",
			"help", "progress", "inherit")),
	},
	"direction":   keywords("ltr", "rtl", "inherit"),
	"elevation": {
		Bits:     BitQuantity | BitNegative,
		Literals: set("below", "level", "above", "higher", "lower", "inherit"),
	},
	"empty-cells": keywords("show", "hide", "inherit"),

	"font":         fontProp,
	"font-family":  fontFamilyProp,
	"font-size":    fontSizeProp,
	"font-stretch": fontStretchProp,
	"font-style":   fontStyleProp,
	"font-variant": fontVariantProp,
	"font-weight":  fontWeightProp,

	"height": sizeProp,
	"width":  sizeProp,

	"letter-spacing": {
		Bits:     BitQuantity | BitNegative,
		Literals: set("normal", "inherit"),
	},
	"line-height": {
		Bits:     BitQuantity,
		Literals: set("normal", "inherit"),
	},

	"list-style":          listStyleProp,
	"list-style-image":    listStyleImageProp,
	"list-style-position": keywords("inside", "outside", "inherit"),
	"list-style-type": {
		Literals: union(listStyleTypeLiterals, inheritLit),
	},

	"margin":        marginProp,
	"margin-top":    marginProp,
	"margin-right":  marginProp,
	"margin-bottom": marginProp,
	"margin-left":   marginProp,

	"max-height": maxSizeProp,
	"max-width":  maxSizeProp,
	"min-height": lengthProp,
	"min-width":  lengthProp,

	"outline":       borderShorthandProp,
	"outline-color": colorProp,
	"outline-style": borderStyleProp,
	"outline-width": borderWidthProp,

	"padding":        lengthProp,
	"padding-top":    lengthProp,
	"padding-right":  lengthProp,
	"padding-bottom": lengthProp,
	"padding-left":   lengthProp,

	"pause":        lengthProp,
	"pause-after":  lengthProp,
	"pause-before": lengthProp,
	"pitch": {
		Bits:     BitQuantity,
		Literals: set("x-low", "low", "medium", "high", "x-high", "inherit"),
	},
	"pitch-range": lengthProp,
	"quotes": {
		Bits:     BitString,
		Literals: set("none", "inherit"),
	},
	"richness": lengthProp,
	"speak":    keywords("normal", "none", "spell-out", "inherit"),
	"speak-header": keywords("once", "always", "inherit"),
	"speak-numeral": keywords("digits", "continuous", "inherit"),
	"speak-punctuation": keywords("code", "none", "inherit"),
	"speech-rate": {
		Bits: BitQuantity,
		Literals: set("x-slow", "slow", "medium", "fast", "x-fast", "faster",
			"slower", "inherit"),
	},
	"stress": lengthProp,

	"table-layout": keywords("auto", "fixed", "inherit"),
	"text-align":   keywords("left", "right", "center", "justify", "inherit"),
	"text-decoration": keywords("none", "underline", "overline",
		"line-through", "blink", "inherit"),
	"text-indent":   signedLengthProp,
	"text-overflow": keywords("clip", "ellipsis"),
	"text-shadow":   shadowProp,
	"text-transform": keywords("capitalize", "uppercase", "lowercase", "none",
		"inherit"),
	"text-wrap": keywords("normal", "none", "unrestricted", "suppress"),

	"unicode-bidi":  keywords("normal", "embed", "bidi-override", "inherit"),
	"unicode-range": unicodeRangeProp,

	"vertical-align": {
		Bits: BitQuantity | BitNegative,
		Literals: set("baseline", "sub", "super", "top", "text-top", "middle",
			"bottom", "text-bottom", "inherit"),
	},
	"visibility": keywords("visible", "hidden", "collapse", "inherit"),
	"voice-family": {
		Bits:     BitString | BitUnreservedWord,
		Literals: union(comma, set("male", "female", "child", "inherit")),
	},
	"volume": {
		Bits: BitQuantity,
		Literals: set("silent", "x-soft", "soft", "medium", "loud", "x-loud",
			"inherit"),
	},

	"white-space": keywords("normal", "pre", "nowrap", "pre-wrap", "pre-line",
		"inherit"),
	"word-spacing": {
		Bits:     BitQuantity | BitNegative,
		Literals: set("normal", "inherit"),
	},
	"word-wrap": keywords("normal", "break-word"),

	// Function keys. Arguments of an admitted call are validated under
	// these entries.
	"rgb()":   colorFnProp,
	"rgba()":  colorFnProp,
	"hsl()":   colorFnProp,
	"hsla()":  colorFnProp,
	"image()": imageProp,
	"linear-gradient()":           gradientProp,
	"radial-gradient()":           gradientProp,
	"repeating-linear-gradient()": gradientProp,
	"repeating-radial-gradient()": gradientProp,
	"rect()":                      rectProp,
}

// defaultWhitelist is the published default: every built-in property except
// the ones a deployment must opt into (currently only unicode-range, which
// is meaningless outside @font-face).
var defaultWhitelist = func() []string {
	names := make([]string, 0, len(definitions))
	for name := range definitions {
		if name == "unicode-range" {
			continue
		}
		if len(name) > 2 && name[len(name)-2:] == "()" {
			continue
		}
		names = append(names, name)
	}
	return names
}()

// Default is the pre-built schema over the default whitelist.
var Default = func() *Schema {
	s, err := WithProperties(defaultWhitelist)
	if err != nil {
		panic(err)
	}
	return s
}()
