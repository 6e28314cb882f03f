package entity

// catalog lists the semicolon-terminated named character references of the
// HTML5 catalog. Values pack one or two UTF-16 code units as (high<<16)|low;
// a zero low half means a single BMP unit. Names are case-sensitive, and the
// historical upper-case aliases (AMP, COPY, LT, ...) appear verbatim.
//
// Spec reference:
// - HTML5 named character references: https://html.spec.whatwg.org/multipage/named-characters.html
var catalog = map[string]uint32{
	"AElig": 0x00C60000,
	"AMP": 0x00260000,
	"Aacute": 0x00C10000,
	"Abreve": 0x01020000,
	"Acirc": 0x00C20000,
	"Acy": 0x04100000,
	"Afr": 0xD835DD04,
	"Agrave": 0x00C00000,
	"Alpha": 0x03910000,
	"Amacr": 0x01000000,
	"And": 0x2A530000,
	"Aogon": 0x01040000,
	"Aopf": 0xD835DD38,
	"ApplyFunction": 0x20610000,
	"Aring": 0x00C50000,
	"Ascr": 0xD835DC9C,
	"Assign": 0x22540000,
	"Atilde": 0x00C30000,
	"Auml": 0x00C40000,
	"Backslash": 0x22160000,
	"Barv": 0x2AE70000,
	"Barwed": 0x23060000,
	"Bcy": 0x04110000,
	"Because": 0x22350000,
	"Bernoullis": 0x212C0000,
	"Beta": 0x03920000,
	"Bfr": 0xD835DD05,
	"Bopf": 0xD835DD39,
	"Breve": 0x02D80000,
	"Bscr": 0x212C0000,
	"Bumpeq": 0x224E0000,
	"CHcy": 0x04270000,
	"COPY": 0x00A90000,
	"Cacute": 0x01060000,
	"Cap": 0x22D20000,
	"CapitalDifferentialD": 0x21450000,
	"Cayleys": 0x212D0000,
	"Ccaron": 0x010C0000,
	"Ccedil": 0x00C70000,
	"Ccirc": 0x01080000,
	"Cconint": 0x22300000,
	"Cdot": 0x010A0000,
	"Cedilla": 0x00B80000,
	"CenterDot": 0x00B70000,
	"Cfr": 0x212D0000,
	"Chi": 0x03A70000,
	"CircleDot": 0x22990000,
	"CircleMinus": 0x22960000,
	"CirclePlus": 0x22950000,
	"CircleTimes": 0x22970000,
	"ClockwiseContourIntegral": 0x22320000,
	"CloseCurlyDoubleQuote": 0x201D0000,
	"CloseCurlyQuote": 0x20190000,
	"Colon": 0x22370000,
	"Colone": 0x2A740000,
	"Congruent": 0x22610000,
	"Conint": 0x222F0000,
	"ContourIntegral": 0x222E0000,
	"Copf": 0x21020000,
	"Coproduct": 0x22100000,
	"CounterClockwiseContourIntegral": 0x22330000,
	"Cross": 0x2A2F0000,
	"Cscr": 0xD835DC9E,
	"Cup": 0x22D30000,
	"CupCap": 0x224D0000,
	"DD": 0x21450000,
	"DDotrahd": 0x29110000,
	"DJcy": 0x04020000,
	"DScy": 0x04050000,
	"DZcy": 0x040F0000,
	"Dagger": 0x20210000,
	"Darr": 0x21A10000,
	"Dashv": 0x2AE40000,
	"Dcaron": 0x010E0000,
	"Dcy": 0x04140000,
	"Del": 0x22070000,
	"Delta": 0x03940000,
	"Dfr": 0xD835DD07,
	"DiacriticalAcute": 0x00B40000,
	"DiacriticalDot": 0x02D90000,
	"DiacriticalDoubleAcute": 0x02DD0000,
	"DiacriticalGrave": 0x00600000,
	"DiacriticalTilde": 0x02DC0000,
	"Diamond": 0x22C40000,
	"DifferentialD": 0x21460000,
	"Dopf": 0xD835DD3B,
	"Dot": 0x00A80000,
	"DotDot": 0x20DC0000,
	"DotEqual": 0x22500000,
	"DoubleContourIntegral": 0x222F0000,
	"DoubleDot": 0x00A80000,
	"DoubleDownArrow": 0x21D30000,
	"DoubleLeftArrow": 0x21D00000,
	"DoubleLeftRightArrow": 0x21D40000,
	"DoubleLeftTee": 0x2AE40000,
	"DoubleLongLeftArrow": 0x27F80000,
	"DoubleLongLeftRightArrow": 0x27FA0000,
	"DoubleLongRightArrow": 0x27F90000,
	"DoubleRightArrow": 0x21D20000,
	"DoubleRightTee": 0x22A80000,
	"DoubleUpArrow": 0x21D10000,
	"DoubleUpDownArrow": 0x21D50000,
	"DoubleVerticalBar": 0x22250000,
	"DownArrow": 0x21930000,
	"DownArrowBar": 0x29130000,
	"DownArrowUpArrow": 0x21F50000,
	"DownBreve": 0x03110000,
	"DownLeftRightVector": 0x29500000,
	"DownLeftTeeVector": 0x295E0000,
	"DownLeftVector": 0x21BD0000,
	"DownLeftVectorBar": 0x29560000,
	"DownRightTeeVector": 0x295F0000,
	"DownRightVector": 0x21C10000,
	"DownRightVectorBar": 0x29570000,
	"DownTee": 0x22A40000,
	"DownTeeArrow": 0x21A70000,
	"Downarrow": 0x21D30000,
	"Dscr": 0xD835DC9F,
	"Dstrok": 0x01100000,
	"ENG": 0x014A0000,
	"ETH": 0x00D00000,
	"Eacute": 0x00C90000,
	"Ecaron": 0x011A0000,
	"Ecirc": 0x00CA0000,
	"Ecy": 0x042D0000,
	"Edot": 0x01160000,
	"Efr": 0xD835DD08,
	"Egrave": 0x00C80000,
	"Element": 0x22080000,
	"Emacr": 0x01120000,
	"EmptySmallSquare": 0x25FB0000,
	"EmptyVerySmallSquare": 0x25AB0000,
	"Eogon": 0x01180000,
	"Eopf": 0xD835DD3C,
	"Epsilon": 0x03950000,
	"Equal": 0x2A750000,
	"EqualTilde": 0x22420000,
	"Equilibrium": 0x21CC0000,
	"Escr": 0x21300000,
	"Esim": 0x2A730000,
	"Eta": 0x03970000,
	"Euml": 0x00CB0000,
	"Exists": 0x22030000,
	"ExponentialE": 0x21470000,
	"Fcy": 0x04240000,
	"Ffr": 0xD835DD09,
	"FilledSmallSquare": 0x25FC0000,
	"FilledVerySmallSquare": 0x25AA0000,
	"Fopf": 0xD835DD3D,
	"ForAll": 0x22000000,
	"Fouriertrf": 0x21310000,
	"Fscr": 0x21310000,
	"GJcy": 0x04030000,
	"GT": 0x003E0000,
	"Gamma": 0x03930000,
	"Gammad": 0x03DC0000,
	"Gbreve": 0x011E0000,
	"Gcedil": 0x01220000,
	"Gcirc": 0x011C0000,
	"Gcy": 0x04130000,
	"Gdot": 0x01200000,
	"Gfr": 0xD835DD0A,
	"Gg": 0x22D90000,
	"Gopf": 0xD835DD3E,
	"GreaterEqual": 0x22650000,
	"GreaterEqualLess": 0x22DB0000,
	"GreaterFullEqual": 0x22670000,
	"GreaterGreater": 0x2AA20000,
	"GreaterLess": 0x22770000,
	"GreaterSlantEqual": 0x2A7E0000,
	"GreaterTilde": 0x22730000,
	"Gscr": 0xD835DCA2,
	"Gt": 0x226B0000,
	"HARDcy": 0x042A0000,
	"Hacek": 0x02C70000,
	"Hat": 0x005E0000,
	"Hcirc": 0x01240000,
	"Hfr": 0x210C0000,
	"HilbertSpace": 0x210B0000,
	"Hopf": 0x210D0000,
	"HorizontalLine": 0x25000000,
	"Hscr": 0x210B0000,
	"Hstrok": 0x01260000,
	"HumpDownHump": 0x224E0000,
	"HumpEqual": 0x224F0000,
	"IEcy": 0x04150000,
	"IJlig": 0x01320000,
	"IOcy": 0x04010000,
	"Iacute": 0x00CD0000,
	"Icirc": 0x00CE0000,
	"Icy": 0x04180000,
	"Idot": 0x01300000,
	"Ifr": 0x21110000,
	"Igrave": 0x00CC0000,
	"Im": 0x21110000,
	"Imacr": 0x012A0000,
	"ImaginaryI": 0x21480000,
	"Implies": 0x21D20000,
	"Int": 0x222C0000,
	"Integral": 0x222B0000,
	"Intersection": 0x22C20000,
	"InvisibleComma": 0x20630000,
	"InvisibleTimes": 0x20620000,
	"Iogon": 0x012E0000,
	"Iopf": 0xD835DD40,
	"Iota": 0x03990000,
	"Iscr": 0x21100000,
	"Itilde": 0x01280000,
	"Iukcy": 0x04060000,
	"Iuml": 0x00CF0000,
	"Jcirc": 0x01340000,
	"Jcy": 0x04190000,
	"Jfr": 0xD835DD0D,
	"Jopf": 0xD835DD41,
	"Jscr": 0xD835DCA5,
	"Jsercy": 0x04080000,
	"Jukcy": 0x04040000,
	"KHcy": 0x04250000,
	"KJcy": 0x040C0000,
	"Kappa": 0x039A0000,
	"Kcedil": 0x01360000,
	"Kcy": 0x041A0000,
	"Kfr": 0xD835DD0E,
	"Kopf": 0xD835DD42,
	"Kscr": 0xD835DCA6,
	"LJcy": 0x04090000,
	"LT": 0x003C0000,
	"Lacute": 0x01390000,
	"Lambda": 0x039B0000,
	"Lang": 0x27EA0000,
	"Laplacetrf": 0x21120000,
	"Larr": 0x219E0000,
	"Lcaron": 0x013D0000,
	"Lcedil": 0x013B0000,
	"Lcy": 0x041B0000,
	"LeftAngleBracket": 0x27E80000,
	"LeftArrow": 0x21900000,
	"LeftArrowBar": 0x21E40000,
	"LeftArrowRightArrow": 0x21C60000,
	"LeftCeiling": 0x23080000,
	"LeftDoubleBracket": 0x27E60000,
	"LeftDownTeeVector": 0x29610000,
	"LeftDownVector": 0x21C30000,
	"LeftDownVectorBar": 0x29590000,
	"LeftFloor": 0x230A0000,
	"LeftRightArrow": 0x21940000,
	"LeftRightVector": 0x294E0000,
	"LeftTee": 0x22A30000,
	"LeftTeeArrow": 0x21A40000,
	"LeftTeeVector": 0x295A0000,
	"LeftTriangle": 0x22B20000,
	"LeftTriangleBar": 0x29CF0000,
	"LeftTriangleEqual": 0x22B40000,
	"LeftUpDownVector": 0x29510000,
	"LeftUpTeeVector": 0x29600000,
	"LeftUpVector": 0x21BF0000,
	"LeftUpVectorBar": 0x29580000,
	"LeftVector": 0x21BC0000,
	"LeftVectorBar": 0x29520000,
	"Leftarrow": 0x21D00000,
	"Leftrightarrow": 0x21D40000,
	"LessEqualGreater": 0x22DA0000,
	"LessFullEqual": 0x22660000,
	"LessGreater": 0x22760000,
	"LessLess": 0x2AA10000,
	"LessSlantEqual": 0x2A7D0000,
	"LessTilde": 0x22720000,
	"Lfr": 0xD835DD0F,
	"Ll": 0x22D80000,
	"Lleftarrow": 0x21DA0000,
	"Lmidot": 0x013F0000,
	"LongLeftArrow": 0x27F50000,
	"LongLeftRightArrow": 0x27F70000,
	"LongRightArrow": 0x27F60000,
	"Longleftarrow": 0x27F80000,
	"Longleftrightarrow": 0x27FA0000,
	"Longrightarrow": 0x27F90000,
	"Lopf": 0xD835DD43,
	"LowerLeftArrow": 0x21990000,
	"LowerRightArrow": 0x21980000,
	"Lscr": 0x21120000,
	"Lsh": 0x21B00000,
	"Lstrok": 0x01410000,
	"Lt": 0x226A0000,
	"Map": 0x29050000,
	"Mcy": 0x041C0000,
	"MediumSpace": 0x205F0000,
	"Mellintrf": 0x21330000,
	"Mfr": 0xD835DD10,
	"MinusPlus": 0x22130000,
	"Mopf": 0xD835DD44,
	"Mscr": 0x21330000,
	"Mu": 0x039C0000,
	"NJcy": 0x040A0000,
	"Nacute": 0x01430000,
	"Ncaron": 0x01470000,
	"Ncedil": 0x01450000,
	"Ncy": 0x041D0000,
	"NegativeMediumSpace": 0x200B0000,
	"NegativeThickSpace": 0x200B0000,
	"NegativeThinSpace": 0x200B0000,
	"NegativeVeryThinSpace": 0x200B0000,
	"NestedGreaterGreater": 0x226B0000,
	"NestedLessLess": 0x226A0000,
	"NewLine": 0x000A0000,
	"Nfr": 0xD835DD11,
	"NoBreak": 0x20600000,
	"NonBreakingSpace": 0x00A00000,
	"Nopf": 0x21150000,
	"Not": 0x2AEC0000,
	"NotCongruent": 0x22620000,
	"NotCupCap": 0x226D0000,
	"NotDoubleVerticalBar": 0x22260000,
	"NotElement": 0x22090000,
	"NotEqual": 0x22600000,
	"NotEqualTilde": 0x22420338,
	"NotExists": 0x22040000,
	"NotGreater": 0x226F0000,
	"NotGreaterEqual": 0x22710000,
	"NotGreaterFullEqual": 0x22670338,
	"NotGreaterGreater": 0x226B0338,
	"NotGreaterLess": 0x22790000,
	"NotGreaterSlantEqual": 0x2A7E0338,
	"NotGreaterTilde": 0x22750000,
	"NotHumpDownHump": 0x224E0338,
	"NotHumpEqual": 0x224F0338,
	"NotLeftTriangle": 0x22EA0000,
	"NotLeftTriangleBar": 0x29CF0338,
	"NotLeftTriangleEqual": 0x22EC0000,
	"NotLess": 0x226E0000,
	"NotLessEqual": 0x22700000,
	"NotLessGreater": 0x22780000,
	"NotLessLess": 0x226A0338,
	"NotLessSlantEqual": 0x2A7D0338,
	"NotLessTilde": 0x22740000,
	"NotNestedGreaterGreater": 0x2AA20338,
	"NotNestedLessLess": 0x2AA10338,
	"NotPrecedes": 0x22800000,
	"NotPrecedesEqual": 0x2AAF0338,
	"NotPrecedesSlantEqual": 0x22E00000,
	"NotReverseElement": 0x220C0000,
	"NotRightTriangle": 0x22EB0000,
	"NotRightTriangleBar": 0x29D00338,
	"NotRightTriangleEqual": 0x22ED0000,
	"NotSquareSubset": 0x228F0338,
	"NotSquareSubsetEqual": 0x22E20000,
	"NotSquareSuperset": 0x22900338,
	"NotSquareSupersetEqual": 0x22E30000,
	"NotSubset": 0x228220D2,
	"NotSubsetEqual": 0x22880000,
	"NotSucceeds": 0x22810000,
	"NotSucceedsEqual": 0x2AB00338,
	"NotSucceedsSlantEqual": 0x22E10000,
	"NotSucceedsTilde": 0x227F0338,
	"NotSuperset": 0x228320D2,
	"NotSupersetEqual": 0x22890000,
	"NotTilde": 0x22410000,
	"NotTildeEqual": 0x22440000,
	"NotTildeFullEqual": 0x22470000,
	"NotTildeTilde": 0x22490000,
	"NotVerticalBar": 0x22240000,
	"Nscr": 0xD835DCA9,
	"Ntilde": 0x00D10000,
	"Nu": 0x039D0000,
	"OElig": 0x01520000,
	"Oacute": 0x00D30000,
	"Ocirc": 0x00D40000,
	"Ocy": 0x041E0000,
	"Odblac": 0x01500000,
	"Ofr": 0xD835DD12,
	"Ograve": 0x00D20000,
	"Omacr": 0x014C0000,
	"Omega": 0x03A90000,
	"Omicron": 0x039F0000,
	"Oopf": 0xD835DD46,
	"OpenCurlyDoubleQuote": 0x201C0000,
	"OpenCurlyQuote": 0x20180000,
	"Or": 0x2A540000,
	"Oscr": 0xD835DCAA,
	"Oslash": 0x00D80000,
	"Otilde": 0x00D50000,
	"Otimes": 0x2A370000,
	"Ouml": 0x00D60000,
	"OverBar": 0x203E0000,
	"OverBrace": 0x23DE0000,
	"OverBracket": 0x23B40000,
	"OverParenthesis": 0x23DC0000,
	"PartialD": 0x22020000,
	"Pcy": 0x041F0000,
	"Pfr": 0xD835DD13,
	"Phi": 0x03A60000,
	"Pi": 0x03A00000,
	"PlusMinus": 0x00B10000,
	"Poincareplane": 0x210C0000,
	"Popf": 0x21190000,
	"Pr": 0x2ABB0000,
	"Precedes": 0x227A0000,
	"PrecedesEqual": 0x2AAF0000,
	"PrecedesSlantEqual": 0x227C0000,
	"PrecedesTilde": 0x227E0000,
	"Prime": 0x20330000,
	"Product": 0x220F0000,
	"Proportion": 0x22370000,
	"Proportional": 0x221D0000,
	"Pscr": 0xD835DCAB,
	"Psi": 0x03A80000,
	"QUOT": 0x00220000,
	"Qfr": 0xD835DD14,
	"Qopf": 0x211A0000,
	"Qscr": 0xD835DCAC,
	"RBarr": 0x29100000,
	"REG": 0x00AE0000,
	"Racute": 0x01540000,
	"Rang": 0x27EB0000,
	"Rarr": 0x21A00000,
	"Rarrtl": 0x29160000,
	"Rcaron": 0x01580000,
	"Rcedil": 0x01560000,
	"Rcy": 0x04200000,
	"Re": 0x211C0000,
	"ReverseElement": 0x220B0000,
	"ReverseEquilibrium": 0x21CB0000,
	"ReverseUpEquilibrium": 0x296F0000,
	"Rfr": 0x211C0000,
	"Rho": 0x03A10000,
	"RightAngleBracket": 0x27E90000,
	"RightArrow": 0x21920000,
	"RightArrowBar": 0x21E50000,
	"RightArrowLeftArrow": 0x21C40000,
	"RightCeiling": 0x23090000,
	"RightDoubleBracket": 0x27E70000,
	"RightDownTeeVector": 0x295D0000,
	"RightDownVector": 0x21C20000,
	"RightDownVectorBar": 0x29550000,
	"RightFloor": 0x230B0000,
	"RightTee": 0x22A20000,
	"RightTeeArrow": 0x21A60000,
	"RightTeeVector": 0x295B0000,
	"RightTriangle": 0x22B30000,
	"RightTriangleBar": 0x29D00000,
	"RightTriangleEqual": 0x22B50000,
	"RightUpDownVector": 0x294F0000,
	"RightUpTeeVector": 0x295C0000,
	"RightUpVector": 0x21BE0000,
	"RightUpVectorBar": 0x29540000,
	"RightVector": 0x21C00000,
	"RightVectorBar": 0x29530000,
	"Rightarrow": 0x21D20000,
	"Ropf": 0x211D0000,
	"RoundImplies": 0x29700000,
	"Rrightarrow": 0x21DB0000,
	"Rscr": 0x211B0000,
	"Rsh": 0x21B10000,
	"RuleDelayed": 0x29F40000,
	"SHCHcy": 0x04290000,
	"SHcy": 0x04280000,
	"SOFTcy": 0x042C0000,
	"Sacute": 0x015A0000,
	"Sc": 0x2ABC0000,
	"Scaron": 0x01600000,
	"Scedil": 0x015E0000,
	"Scirc": 0x015C0000,
	"Scy": 0x04210000,
	"Sfr": 0xD835DD16,
	"ShortDownArrow": 0x21930000,
	"ShortLeftArrow": 0x21900000,
	"ShortRightArrow": 0x21920000,
	"ShortUpArrow": 0x21910000,
	"Sigma": 0x03A30000,
	"SmallCircle": 0x22180000,
	"Sopf": 0xD835DD4A,
	"Sqrt": 0x221A0000,
	"Square": 0x25A10000,
	"SquareIntersection": 0x22930000,
	"SquareSubset": 0x228F0000,
	"SquareSubsetEqual": 0x22910000,
	"SquareSuperset": 0x22900000,
	"SquareSupersetEqual": 0x22920000,
	"SquareUnion": 0x22940000,
	"Sscr": 0xD835DCAE,
	"Star": 0x22C60000,
	"Sub": 0x22D00000,
	"Subset": 0x22D00000,
	"SubsetEqual": 0x22860000,
	"Succeeds": 0x227B0000,
	"SucceedsEqual": 0x2AB00000,
	"SucceedsSlantEqual": 0x227D0000,
	"SucceedsTilde": 0x227F0000,
	"SuchThat": 0x220B0000,
	"Sum": 0x22110000,
	"Sup": 0x22D10000,
	"Superset": 0x22830000,
	"SupersetEqual": 0x22870000,
	"Supset": 0x22D10000,
	"THORN": 0x00DE0000,
	"TRADE": 0x21220000,
	"TSHcy": 0x040B0000,
	"TScy": 0x04260000,
	"Tab": 0x00090000,
	"Tau": 0x03A40000,
	"Tcaron": 0x01640000,
	"Tcedil": 0x01620000,
	"Tcy": 0x04220000,
	"Tfr": 0xD835DD17,
	"Therefore": 0x22340000,
	"Theta": 0x03980000,
	"ThickSpace": 0x205F200A,
	"ThinSpace": 0x20090000,
	"Tilde": 0x223C0000,
	"TildeEqual": 0x22430000,
	"TildeFullEqual": 0x22450000,
	"TildeTilde": 0x22480000,
	"Topf": 0xD835DD4B,
	"TripleDot": 0x20DB0000,
	"Tscr": 0xD835DCAF,
	"Tstrok": 0x01660000,
	"Uacute": 0x00DA0000,
	"Uarr": 0x219F0000,
	"Uarrocir": 0x29490000,
	"Ubrcy": 0x040E0000,
	"Ubreve": 0x016C0000,
	"Ucirc": 0x00DB0000,
	"Ucy": 0x04230000,
	"Udblac": 0x01700000,
	"Ufr": 0xD835DD18,
	"Ugrave": 0x00D90000,
	"Umacr": 0x016A0000,
	"UnderBar": 0x005F0000,
	"UnderBrace": 0x23DF0000,
	"UnderBracket": 0x23B50000,
	"UnderParenthesis": 0x23DD0000,
	"Union": 0x22C30000,
	"UnionPlus": 0x228E0000,
	"Uogon": 0x01720000,
	"Uopf": 0xD835DD4C,
	"UpArrow": 0x21910000,
	"UpArrowBar": 0x29120000,
	"UpArrowDownArrow": 0x21C50000,
	"UpDownArrow": 0x21950000,
	"UpEquilibrium": 0x296E0000,
	"UpTee": 0x22A50000,
	"UpTeeArrow": 0x21A50000,
	"Uparrow": 0x21D10000,
	"Updownarrow": 0x21D50000,
	"UpperLeftArrow": 0x21960000,
	"UpperRightArrow": 0x21970000,
	"Upsi": 0x03D20000,
	"Upsilon": 0x03A50000,
	"Uring": 0x016E0000,
	"Uscr": 0xD835DCB0,
	"Utilde": 0x01680000,
	"Uuml": 0x00DC0000,
	"VDash": 0x22AB0000,
	"Vbar": 0x2AEB0000,
	"Vcy": 0x04120000,
	"Vdash": 0x22A90000,
	"Vdashl": 0x2AE60000,
	"Vee": 0x22C10000,
	"Verbar": 0x20160000,
	"Vert": 0x20160000,
	"VerticalBar": 0x22230000,
	"VerticalLine": 0x007C0000,
	"VerticalSeparator": 0x27580000,
	"VerticalTilde": 0x22400000,
	"VeryThinSpace": 0x200A0000,
	"Vfr": 0xD835DD19,
	"Vopf": 0xD835DD4D,
	"Vscr": 0xD835DCB1,
	"Vvdash": 0x22AA0000,
	"Wcirc": 0x01740000,
	"Wedge": 0x22C00000,
	"Wfr": 0xD835DD1A,
	"Wopf": 0xD835DD4E,
	"Wscr": 0xD835DCB2,
	"Xfr": 0xD835DD1B,
	"Xi": 0x039E0000,
	"Xopf": 0xD835DD4F,
	"Xscr": 0xD835DCB3,
	"YAcy": 0x042F0000,
	"YIcy": 0x04070000,
	"YUcy": 0x042E0000,
	"Yacute": 0x00DD0000,
	"Ycirc": 0x01760000,
	"Ycy": 0x042B0000,
	"Yfr": 0xD835DD1C,
	"Yopf": 0xD835DD50,
	"Yscr": 0xD835DCB4,
	"Yuml": 0x01780000,
	"ZHcy": 0x04160000,
	"Zacute": 0x01790000,
	"Zcaron": 0x017D0000,
	"Zcy": 0x04170000,
	"Zdot": 0x017B0000,
	"ZeroWidthSpace": 0x200B0000,
	"Zeta": 0x03960000,
	"Zfr": 0x21280000,
	"Zopf": 0x21240000,
	"Zscr": 0xD835DCB5,
	"aacute": 0x00E10000,
	"abreve": 0x01030000,
	"ac": 0x223E0000,
	"acE": 0x223E0333,
	"acd": 0x223F0000,
	"acirc": 0x00E20000,
	"acute": 0x00B40000,
	"acy": 0x04300000,
	"aelig": 0x00E60000,
	"af": 0x20610000,
	"afr": 0xD835DD1E,
	"agrave": 0x00E00000,
	"alefsym": 0x21350000,
	"aleph": 0x21350000,
	"alpha": 0x03B10000,
	"amacr": 0x01010000,
	"amalg": 0x2A3F0000,
	"amp": 0x00260000,
	"and": 0x22270000,
	"andand": 0x2A550000,
	"andd": 0x2A5C0000,
	"andslope": 0x2A580000,
	"andv": 0x2A5A0000,
	"ang": 0x22200000,
	"ange": 0x29A40000,
	"angle": 0x22200000,
	"angmsd": 0x22210000,
	"angmsdaa": 0x29A80000,
	"angmsdab": 0x29A90000,
	"angmsdac": 0x29AA0000,
	"angmsdad": 0x29AB0000,
	"angmsdae": 0x29AC0000,
	"angmsdaf": 0x29AD0000,
	"angmsdag": 0x29AE0000,
	"angmsdah": 0x29AF0000,
	"angrt": 0x221F0000,
	"angrtvb": 0x22BE0000,
	"angrtvbd": 0x299D0000,
	"angsph": 0x22220000,
	"angst": 0x00C50000,
	"angzarr": 0x237C0000,
	"aogon": 0x01050000,
	"aopf": 0xD835DD52,
	"ap": 0x22480000,
	"apE": 0x2A700000,
	"apacir": 0x2A6F0000,
	"ape": 0x224A0000,
	"apid": 0x224B0000,
	"apos": 0x00270000,
	"approx": 0x22480000,
	"approxeq": 0x224A0000,
	"aring": 0x00E50000,
	"ascr": 0xD835DCB6,
	"ast": 0x002A0000,
	"asymp": 0x22480000,
	"asympeq": 0x224D0000,
	"atilde": 0x00E30000,
	"auml": 0x00E40000,
	"awconint": 0x22330000,
	"awint": 0x2A110000,
	"bNot": 0x2AED0000,
	"backcong": 0x224C0000,
	"backepsilon": 0x03F60000,
	"backprime": 0x20350000,
	"backsim": 0x223D0000,
	"backsimeq": 0x22CD0000,
	"barvee": 0x22BD0000,
	"barwed": 0x23050000,
	"barwedge": 0x23050000,
	"bbrk": 0x23B50000,
	"bbrktbrk": 0x23B60000,
	"bcong": 0x224C0000,
	"bcy": 0x04310000,
	"bdquo": 0x201E0000,
	"becaus": 0x22350000,
	"because": 0x22350000,
	"bemptyv": 0x29B00000,
	"bepsi": 0x03F60000,
	"bernou": 0x212C0000,
	"beta": 0x03B20000,
	"beth": 0x21360000,
	"between": 0x226C0000,
	"bfr": 0xD835DD1F,
	"bigcap": 0x22C20000,
	"bigcirc": 0x25EF0000,
	"bigcup": 0x22C30000,
	"bigodot": 0x2A000000,
	"bigoplus": 0x2A010000,
	"bigotimes": 0x2A020000,
	"bigsqcup": 0x2A060000,
	"bigstar": 0x26050000,
	"bigtriangledown": 0x25BD0000,
	"bigtriangleup": 0x25B30000,
	"biguplus": 0x2A040000,
	"bigvee": 0x22C10000,
	"bigwedge": 0x22C00000,
	"bkarow": 0x290D0000,
	"blacklozenge": 0x29EB0000,
	"blacksquare": 0x25AA0000,
	"blacktriangle": 0x25B40000,
	"blacktriangledown": 0x25BE0000,
	"blacktriangleleft": 0x25C20000,
	"blacktriangleright": 0x25B80000,
	"blank": 0x24230000,
	"blk12": 0x25920000,
	"blk14": 0x25910000,
	"blk34": 0x25930000,
	"block": 0x25880000,
	"bne": 0x003D20E5,
	"bnequiv": 0x226120E5,
	"bnot": 0x23100000,
	"bopf": 0xD835DD53,
	"bot": 0x22A50000,
	"bottom": 0x22A50000,
	"bowtie": 0x22C80000,
	"boxDL": 0x25570000,
	"boxDR": 0x25540000,
	"boxDl": 0x25560000,
	"boxDr": 0x25530000,
	"boxH": 0x25500000,
	"boxHD": 0x25660000,
	"boxHU": 0x25690000,
	"boxHd": 0x25640000,
	"boxHu": 0x25670000,
	"boxUL": 0x255D0000,
	"boxUR": 0x255A0000,
	"boxUl": 0x255C0000,
	"boxUr": 0x25590000,
	"boxV": 0x25510000,
	"boxVH": 0x256C0000,
	"boxVL": 0x25630000,
	"boxVR": 0x25600000,
	"boxVh": 0x256B0000,
	"boxVl": 0x25620000,
	"boxVr": 0x255F0000,
	"boxbox": 0x29C90000,
	"boxdL": 0x25550000,
	"boxdR": 0x25520000,
	"boxdl": 0x25100000,
	"boxdr": 0x250C0000,
	"boxh": 0x25000000,
	"boxhD": 0x25650000,
	"boxhU": 0x25680000,
	"boxhd": 0x252C0000,
	"boxhu": 0x25340000,
	"boxminus": 0x229F0000,
	"boxplus": 0x229E0000,
	"boxtimes": 0x22A00000,
	"boxuL": 0x255B0000,
	"boxuR": 0x25580000,
	"boxul": 0x25180000,
	"boxur": 0x25140000,
	"boxv": 0x25020000,
	"boxvH": 0x256A0000,
	"boxvL": 0x25610000,
	"boxvR": 0x255E0000,
	"boxvh": 0x253C0000,
	"boxvl": 0x25240000,
	"boxvr": 0x251C0000,
	"bprime": 0x20350000,
	"breve": 0x02D80000,
	"brvbar": 0x00A60000,
	"bscr": 0xD835DCB7,
	"bsemi": 0x204F0000,
	"bsim": 0x223D0000,
	"bsime": 0x22CD0000,
	"bsol": 0x005C0000,
	"bsolb": 0x29C50000,
	"bsolhsub": 0x27C80000,
	"bull": 0x20220000,
	"bullet": 0x20220000,
	"bump": 0x224E0000,
	"bumpE": 0x2AAE0000,
	"bumpe": 0x224F0000,
	"bumpeq": 0x224F0000,
	"cacute": 0x01070000,
	"cap": 0x22290000,
	"capand": 0x2A440000,
	"capbrcup": 0x2A490000,
	"capcap": 0x2A4B0000,
	"capcup": 0x2A470000,
	"capdot": 0x2A400000,
	"caps": 0x2229FE00,
	"caret": 0x20410000,
	"caron": 0x02C70000,
	"ccaps": 0x2A4D0000,
	"ccaron": 0x010D0000,
	"ccedil": 0x00E70000,
	"ccirc": 0x01090000,
	"ccups": 0x2A4C0000,
	"ccupssm": 0x2A500000,
	"cdot": 0x010B0000,
	"cedil": 0x00B80000,
	"cemptyv": 0x29B20000,
	"cent": 0x00A20000,
	"centerdot": 0x00B70000,
	"cfr": 0xD835DD20,
	"chcy": 0x04470000,
	"check": 0x27130000,
	"checkmark": 0x27130000,
	"chi": 0x03C70000,
	"cir": 0x25CB0000,
	"cirE": 0x29C30000,
	"circ": 0x02C60000,
	"circeq": 0x22570000,
	"circlearrowleft": 0x21BA0000,
	"circlearrowright": 0x21BB0000,
	"circledR": 0x00AE0000,
	"circledS": 0x24C80000,
	"circledast": 0x229B0000,
	"circledcirc": 0x229A0000,
	"circleddash": 0x229D0000,
	"cire": 0x22570000,
	"cirfnint": 0x2A100000,
	"cirmid": 0x2AEF0000,
	"cirscir": 0x29C20000,
	"clubs": 0x26630000,
	"clubsuit": 0x26630000,
	"colon": 0x003A0000,
	"colone": 0x22540000,
	"coloneq": 0x22540000,
	"comma": 0x002C0000,
	"commat": 0x00400000,
	"comp": 0x22010000,
	"compfn": 0x22180000,
	"complement": 0x22010000,
	"complexes": 0x21020000,
	"cong": 0x22450000,
	"congdot": 0x2A6D0000,
	"conint": 0x222E0000,
	"copf": 0xD835DD54,
	"coprod": 0x22100000,
	"copy": 0x00A90000,
	"copysr": 0x21170000,
	"crarr": 0x21B50000,
	"cross": 0x27170000,
	"cscr": 0xD835DCB8,
	"csub": 0x2ACF0000,
	"csube": 0x2AD10000,
	"csup": 0x2AD00000,
	"csupe": 0x2AD20000,
	"ctdot": 0x22EF0000,
	"cudarrl": 0x29380000,
	"cudarrr": 0x29350000,
	"cuepr": 0x22DE0000,
	"cuesc": 0x22DF0000,
	"cularr": 0x21B60000,
	"cularrp": 0x293D0000,
	"cup": 0x222A0000,
	"cupbrcap": 0x2A480000,
	"cupcap": 0x2A460000,
	"cupcup": 0x2A4A0000,
	"cupdot": 0x228D0000,
	"cupor": 0x2A450000,
	"cups": 0x222AFE00,
	"curarr": 0x21B70000,
	"curarrm": 0x293C0000,
	"curlyeqprec": 0x22DE0000,
	"curlyeqsucc": 0x22DF0000,
	"curlyvee": 0x22CE0000,
	"curlywedge": 0x22CF0000,
	"curren": 0x00A40000,
	"curvearrowleft": 0x21B60000,
	"curvearrowright": 0x21B70000,
	"cuvee": 0x22CE0000,
	"cuwed": 0x22CF0000,
	"cwconint": 0x22320000,
	"cwint": 0x22310000,
	"cylcty": 0x232D0000,
	"dArr": 0x21D30000,
	"dHar": 0x29650000,
	"dagger": 0x20200000,
	"daleth": 0x21380000,
	"darr": 0x21930000,
	"dash": 0x20100000,
	"dashv": 0x22A30000,
	"dbkarow": 0x290F0000,
	"dblac": 0x02DD0000,
	"dcaron": 0x010F0000,
	"dcy": 0x04340000,
	"dd": 0x21460000,
	"ddagger": 0x20210000,
	"ddarr": 0x21CA0000,
	"ddotseq": 0x2A770000,
	"deg": 0x00B00000,
	"delta": 0x03B40000,
	"demptyv": 0x29B10000,
	"dfisht": 0x297F0000,
	"dfr": 0xD835DD21,
	"dharl": 0x21C30000,
	"dharr": 0x21C20000,
	"diam": 0x22C40000,
	"diamond": 0x22C40000,
	"diamondsuit": 0x26660000,
	"diams": 0x26660000,
	"die": 0x00A80000,
	"digamma": 0x03DD0000,
	"disin": 0x22F20000,
	"div": 0x00F70000,
	"divide": 0x00F70000,
	"divideontimes": 0x22C70000,
	"divonx": 0x22C70000,
	"djcy": 0x04520000,
	"dlcorn": 0x231E0000,
	"dlcrop": 0x230D0000,
	"dollar": 0x00240000,
	"dopf": 0xD835DD55,
	"dot": 0x02D90000,
	"doteq": 0x22500000,
	"doteqdot": 0x22510000,
	"dotminus": 0x22380000,
	"dotplus": 0x22140000,
	"dotsquare": 0x22A10000,
	"doublebarwedge": 0x23060000,
	"downarrow": 0x21930000,
	"downdownarrows": 0x21CA0000,
	"downharpoonleft": 0x21C30000,
	"downharpoonright": 0x21C20000,
	"drbkarow": 0x29100000,
	"drcorn": 0x231F0000,
	"drcrop": 0x230C0000,
	"dscr": 0xD835DCB9,
	"dscy": 0x04550000,
	"dsol": 0x29F60000,
	"dstrok": 0x01110000,
	"dtdot": 0x22F10000,
	"dtri": 0x25BF0000,
	"dtrif": 0x25BE0000,
	"duarr": 0x21F50000,
	"duhar": 0x296F0000,
	"dwangle": 0x29A60000,
	"dzcy": 0x045F0000,
	"dzigrarr": 0x27FF0000,
	"eDDot": 0x2A770000,
	"eDot": 0x22510000,
	"eacute": 0x00E90000,
	"easter": 0x2A6E0000,
	"ecaron": 0x011B0000,
	"ecir": 0x22560000,
	"ecirc": 0x00EA0000,
	"ecolon": 0x22550000,
	"ecy": 0x044D0000,
	"edot": 0x01170000,
	"ee": 0x21470000,
	"efDot": 0x22520000,
	"efr": 0xD835DD22,
	"eg": 0x2A9A0000,
	"egrave": 0x00E80000,
	"egs": 0x2A960000,
	"egsdot": 0x2A980000,
	"el": 0x2A990000,
	"elinters": 0x23E70000,
	"ell": 0x21130000,
	"els": 0x2A950000,
	"elsdot": 0x2A970000,
	"emacr": 0x01130000,
	"empty": 0x22050000,
	"emptyset": 0x22050000,
	"emptyv": 0x22050000,
	"emsp": 0x20030000,
	"emsp13": 0x20040000,
	"emsp14": 0x20050000,
	"eng": 0x014B0000,
	"ensp": 0x20020000,
	"eogon": 0x01190000,
	"eopf": 0xD835DD56,
	"epar": 0x22D50000,
	"eparsl": 0x29E30000,
	"eplus": 0x2A710000,
	"epsi": 0x03B50000,
	"epsilon": 0x03B50000,
	"epsiv": 0x03F50000,
	"eqcirc": 0x22560000,
	"eqcolon": 0x22550000,
	"eqsim": 0x22420000,
	"eqslantgtr": 0x2A960000,
	"eqslantless": 0x2A950000,
	"equals": 0x003D0000,
	"equest": 0x225F0000,
	"equiv": 0x22610000,
	"equivDD": 0x2A780000,
	"eqvparsl": 0x29E50000,
	"erDot": 0x22530000,
	"erarr": 0x29710000,
	"escr": 0x212F0000,
	"esdot": 0x22500000,
	"esim": 0x22420000,
	"eta": 0x03B70000,
	"eth": 0x00F00000,
	"euml": 0x00EB0000,
	"euro": 0x20AC0000,
	"excl": 0x00210000,
	"exist": 0x22030000,
	"expectation": 0x21300000,
	"exponentiale": 0x21470000,
	"fallingdotseq": 0x22520000,
	"fcy": 0x04440000,
	"female": 0x26400000,
	"ffilig": 0xFB030000,
	"fflig": 0xFB000000,
	"ffllig": 0xFB040000,
	"ffr": 0xD835DD23,
	"filig": 0xFB010000,
	"fjlig": 0x0066006A,
	"flat": 0x266D0000,
	"fllig": 0xFB020000,
	"fltns": 0x25B10000,
	"fnof": 0x01920000,
	"fopf": 0xD835DD57,
	"forall": 0x22000000,
	"fork": 0x22D40000,
	"forkv": 0x2AD90000,
	"fpartint": 0x2A0D0000,
	"frac12": 0x00BD0000,
	"frac13": 0x21530000,
	"frac14": 0x00BC0000,
	"frac15": 0x21550000,
	"frac16": 0x21590000,
	"frac18": 0x215B0000,
	"frac23": 0x21540000,
	"frac25": 0x21560000,
	"frac34": 0x00BE0000,
	"frac35": 0x21570000,
	"frac38": 0x215C0000,
	"frac45": 0x21580000,
	"frac56": 0x215A0000,
	"frac58": 0x215D0000,
	"frac78": 0x215E0000,
	"frasl": 0x20440000,
	"frown": 0x23220000,
	"fscr": 0xD835DCBB,
	"gE": 0x22670000,
	"gEl": 0x2A8C0000,
	"gacute": 0x01F50000,
	"gamma": 0x03B30000,
	"gammad": 0x03DD0000,
	"gap": 0x2A860000,
	"gbreve": 0x011F0000,
	"gcirc": 0x011D0000,
	"gcy": 0x04330000,
	"gdot": 0x01210000,
	"ge": 0x22650000,
	"gel": 0x22DB0000,
	"geq": 0x22650000,
	"geqq": 0x22670000,
	"geqslant": 0x2A7E0000,
	"ges": 0x2A7E0000,
	"gescc": 0x2AA90000,
	"gesdot": 0x2A800000,
	"gesdoto": 0x2A820000,
	"gesdotol": 0x2A840000,
	"gesl": 0x22DBFE00,
	"gesles": 0x2A940000,
	"gfr": 0xD835DD24,
	"gg": 0x226B0000,
	"ggg": 0x22D90000,
	"gimel": 0x21370000,
	"gjcy": 0x04530000,
	"gl": 0x22770000,
	"glE": 0x2A920000,
	"gla": 0x2AA50000,
	"glj": 0x2AA40000,
	"gnE": 0x22690000,
	"gnap": 0x2A8A0000,
	"gnapprox": 0x2A8A0000,
	"gne": 0x2A880000,
	"gneq": 0x2A880000,
	"gneqq": 0x22690000,
	"gnsim": 0x22E70000,
	"gopf": 0xD835DD58,
	"grave": 0x00600000,
	"gscr": 0x210A0000,
	"gsim": 0x22730000,
	"gsime": 0x2A8E0000,
	"gsiml": 0x2A900000,
	"gt": 0x003E0000,
	"gtcc": 0x2AA70000,
	"gtcir": 0x2A7A0000,
	"gtdot": 0x22D70000,
	"gtlPar": 0x29950000,
	"gtquest": 0x2A7C0000,
	"gtrapprox": 0x2A860000,
	"gtrarr": 0x29780000,
	"gtrdot": 0x22D70000,
	"gtreqless": 0x22DB0000,
	"gtreqqless": 0x2A8C0000,
	"gtrless": 0x22770000,
	"gtrsim": 0x22730000,
	"gvertneqq": 0x2269FE00,
	"gvnE": 0x2269FE00,
	"hArr": 0x21D40000,
	"hairsp": 0x200A0000,
	"half": 0x00BD0000,
	"hamilt": 0x210B0000,
	"hardcy": 0x044A0000,
	"harr": 0x21940000,
	"harrcir": 0x29480000,
	"harrw": 0x21AD0000,
	"hbar": 0x210F0000,
	"hcirc": 0x01250000,
	"hearts": 0x26650000,
	"heartsuit": 0x26650000,
	"hellip": 0x20260000,
	"hercon": 0x22B90000,
	"hfr": 0xD835DD25,
	"hksearow": 0x29250000,
	"hkswarow": 0x29260000,
	"hoarr": 0x21FF0000,
	"homtht": 0x223B0000,
	"hookleftarrow": 0x21A90000,
	"hookrightarrow": 0x21AA0000,
	"hopf": 0xD835DD59,
	"horbar": 0x20150000,
	"hscr": 0xD835DCBD,
	"hslash": 0x210F0000,
	"hstrok": 0x01270000,
	"hybull": 0x20430000,
	"hyphen": 0x20100000,
	"iacute": 0x00ED0000,
	"ic": 0x20630000,
	"icirc": 0x00EE0000,
	"icy": 0x04380000,
	"iecy": 0x04350000,
	"iexcl": 0x00A10000,
	"iff": 0x21D40000,
	"ifr": 0xD835DD26,
	"igrave": 0x00EC0000,
	"ii": 0x21480000,
	"iiiint": 0x2A0C0000,
	"iiint": 0x222D0000,
	"iinfin": 0x29DC0000,
	"iiota": 0x21290000,
	"ijlig": 0x01330000,
	"imacr": 0x012B0000,
	"image": 0x21110000,
	"imagline": 0x21100000,
	"imagpart": 0x21110000,
	"imath": 0x01310000,
	"imof": 0x22B70000,
	"imped": 0x01B50000,
	"in": 0x22080000,
	"incare": 0x21050000,
	"infin": 0x221E0000,
	"infintie": 0x29DD0000,
	"inodot": 0x01310000,
	"int": 0x222B0000,
	"intcal": 0x22BA0000,
	"integers": 0x21240000,
	"intercal": 0x22BA0000,
	"intlarhk": 0x2A170000,
	"intprod": 0x2A3C0000,
	"iocy": 0x04510000,
	"iogon": 0x012F0000,
	"iopf": 0xD835DD5A,
	"iota": 0x03B90000,
	"iprod": 0x2A3C0000,
	"iquest": 0x00BF0000,
	"iscr": 0xD835DCBE,
	"isin": 0x22080000,
	"isinE": 0x22F90000,
	"isindot": 0x22F50000,
	"isins": 0x22F40000,
	"isinsv": 0x22F30000,
	"isinv": 0x22080000,
	"it": 0x20620000,
	"itilde": 0x01290000,
	"iukcy": 0x04560000,
	"iuml": 0x00EF0000,
	"jcirc": 0x01350000,
	"jcy": 0x04390000,
	"jfr": 0xD835DD27,
	"jmath": 0x02370000,
	"jopf": 0xD835DD5B,
	"jscr": 0xD835DCBF,
	"jsercy": 0x04580000,
	"jukcy": 0x04540000,
	"kappa": 0x03BA0000,
	"kappav": 0x03F00000,
	"kcedil": 0x01370000,
	"kcy": 0x043A0000,
	"kfr": 0xD835DD28,
	"kgreen": 0x01380000,
	"khcy": 0x04450000,
	"kjcy": 0x045C0000,
	"kopf": 0xD835DD5C,
	"kscr": 0xD835DCC0,
	"lAarr": 0x21DA0000,
	"lArr": 0x21D00000,
	"lAtail": 0x291B0000,
	"lBarr": 0x290E0000,
	"lE": 0x22660000,
	"lEg": 0x2A8B0000,
	"lHar": 0x29620000,
	"lacute": 0x013A0000,
	"laemptyv": 0x29B40000,
	"lagran": 0x21120000,
	"lambda": 0x03BB0000,
	"lang": 0x27E80000,
	"langd": 0x29910000,
	"langle": 0x27E80000,
	"lap": 0x2A850000,
	"laquo": 0x00AB0000,
	"larr": 0x21900000,
	"larrb": 0x21E40000,
	"larrbfs": 0x291F0000,
	"larrfs": 0x291D0000,
	"larrhk": 0x21A90000,
	"larrlp": 0x21AB0000,
	"larrpl": 0x29390000,
	"larrsim": 0x29730000,
	"larrtl": 0x21A20000,
	"lat": 0x2AAB0000,
	"latail": 0x29190000,
	"late": 0x2AAD0000,
	"lates": 0x2AADFE00,
	"lbarr": 0x290C0000,
	"lbbrk": 0x27720000,
	"lbrace": 0x007B0000,
	"lbrack": 0x005B0000,
	"lbrke": 0x298B0000,
	"lbrksld": 0x298F0000,
	"lbrkslu": 0x298D0000,
	"lcaron": 0x013E0000,
	"lcedil": 0x013C0000,
	"lceil": 0x23080000,
	"lcub": 0x007B0000,
	"lcy": 0x043B0000,
	"ldca": 0x29360000,
	"ldquo": 0x201C0000,
	"ldquor": 0x201E0000,
	"ldrdhar": 0x29670000,
	"ldrushar": 0x294B0000,
	"ldsh": 0x21B20000,
	"le": 0x22640000,
	"leftarrow": 0x21900000,
	"leftarrowtail": 0x21A20000,
	"leftharpoondown": 0x21BD0000,
	"leftharpoonup": 0x21BC0000,
	"leftleftarrows": 0x21C70000,
	"leftrightarrow": 0x21940000,
	"leftrightarrows": 0x21C60000,
	"leftrightharpoons": 0x21CB0000,
	"leftrightsquigarrow": 0x21AD0000,
	"leftthreetimes": 0x22CB0000,
	"leg": 0x22DA0000,
	"leq": 0x22640000,
	"leqq": 0x22660000,
	"leqslant": 0x2A7D0000,
	"les": 0x2A7D0000,
	"lescc": 0x2AA80000,
	"lesdot": 0x2A7F0000,
	"lesdoto": 0x2A810000,
	"lesdotor": 0x2A830000,
	"lesg": 0x22DAFE00,
	"lesges": 0x2A930000,
	"lessapprox": 0x2A850000,
	"lessdot": 0x22D60000,
	"lesseqgtr": 0x22DA0000,
	"lesseqqgtr": 0x2A8B0000,
	"lessgtr": 0x22760000,
	"lesssim": 0x22720000,
	"lfisht": 0x297C0000,
	"lfloor": 0x230A0000,
	"lfr": 0xD835DD29,
	"lg": 0x22760000,
	"lgE": 0x2A910000,
	"lhard": 0x21BD0000,
	"lharu": 0x21BC0000,
	"lharul": 0x296A0000,
	"lhblk": 0x25840000,
	"ljcy": 0x04590000,
	"ll": 0x226A0000,
	"llarr": 0x21C70000,
	"llcorner": 0x231E0000,
	"llhard": 0x296B0000,
	"lltri": 0x25FA0000,
	"lmidot": 0x01400000,
	"lmoust": 0x23B00000,
	"lmoustache": 0x23B00000,
	"lnE": 0x22680000,
	"lnap": 0x2A890000,
	"lnapprox": 0x2A890000,
	"lne": 0x2A870000,
	"lneq": 0x2A870000,
	"lneqq": 0x22680000,
	"lnsim": 0x22E60000,
	"loang": 0x27EC0000,
	"loarr": 0x21FD0000,
	"lobrk": 0x27E60000,
	"longleftarrow": 0x27F50000,
	"longleftrightarrow": 0x27F70000,
	"longmapsto": 0x27FC0000,
	"longrightarrow": 0x27F60000,
	"looparrowleft": 0x21AB0000,
	"looparrowright": 0x21AC0000,
	"lopar": 0x29850000,
	"lopf": 0xD835DD5D,
	"loplus": 0x2A2D0000,
	"lotimes": 0x2A340000,
	"lowast": 0x22170000,
	"lowbar": 0x005F0000,
	"loz": 0x25CA0000,
	"lozenge": 0x25CA0000,
	"lozf": 0x29EB0000,
	"lpar": 0x00280000,
	"lparlt": 0x29930000,
	"lrarr": 0x21C60000,
	"lrcorner": 0x231F0000,
	"lrhar": 0x21CB0000,
	"lrhard": 0x296D0000,
	"lrm": 0x200E0000,
	"lrtri": 0x22BF0000,
	"lsaquo": 0x20390000,
	"lscr": 0xD835DCC1,
	"lsh": 0x21B00000,
	"lsim": 0x22720000,
	"lsime": 0x2A8D0000,
	"lsimg": 0x2A8F0000,
	"lsqb": 0x005B0000,
	"lsquo": 0x20180000,
	"lsquor": 0x201A0000,
	"lstrok": 0x01420000,
	"lt": 0x003C0000,
	"ltcc": 0x2AA60000,
	"ltcir": 0x2A790000,
	"ltdot": 0x22D60000,
	"lthree": 0x22CB0000,
	"ltimes": 0x22C90000,
	"ltlarr": 0x29760000,
	"ltquest": 0x2A7B0000,
	"ltrPar": 0x29960000,
	"ltri": 0x25C30000,
	"ltrie": 0x22B40000,
	"ltrif": 0x25C20000,
	"lurdshar": 0x294A0000,
	"luruhar": 0x29660000,
	"lvertneqq": 0x2268FE00,
	"lvnE": 0x2268FE00,
	"mDDot": 0x223A0000,
	"macr": 0x00AF0000,
	"male": 0x26420000,
	"malt": 0x27200000,
	"maltese": 0x27200000,
	"map": 0x21A60000,
	"mapsto": 0x21A60000,
	"mapstodown": 0x21A70000,
	"mapstoleft": 0x21A40000,
	"mapstoup": 0x21A50000,
	"marker": 0x25AE0000,
	"mcomma": 0x2A290000,
	"mcy": 0x043C0000,
	"mdash": 0x20140000,
	"measuredangle": 0x22210000,
	"mfr": 0xD835DD2A,
	"mho": 0x21270000,
	"micro": 0x00B50000,
	"mid": 0x22230000,
	"midast": 0x002A0000,
	"midcir": 0x2AF00000,
	"middot": 0x00B70000,
	"minus": 0x22120000,
	"minusb": 0x229F0000,
	"minusd": 0x22380000,
	"minusdu": 0x2A2A0000,
	"mlcp": 0x2ADB0000,
	"mldr": 0x20260000,
	"mnplus": 0x22130000,
	"models": 0x22A70000,
	"mopf": 0xD835DD5E,
	"mp": 0x22130000,
	"mscr": 0xD835DCC2,
	"mstpos": 0x223E0000,
	"mu": 0x03BC0000,
	"multimap": 0x22B80000,
	"mumap": 0x22B80000,
	"nGg": 0x22D90338,
	"nGt": 0x226B20D2,
	"nGtv": 0x226B0338,
	"nLeftarrow": 0x21CD0000,
	"nLeftrightarrow": 0x21CE0000,
	"nLl": 0x22D80338,
	"nLt": 0x226A20D2,
	"nLtv": 0x226A0338,
	"nRightarrow": 0x21CF0000,
	"nVDash": 0x22AF0000,
	"nVdash": 0x22AE0000,
	"nabla": 0x22070000,
	"nacute": 0x01440000,
	"nang": 0x222020D2,
	"nap": 0x22490000,
	"napE": 0x2A700338,
	"napid": 0x224B0338,
	"napos": 0x01490000,
	"napprox": 0x22490000,
	"natur": 0x266E0000,
	"natural": 0x266E0000,
	"naturals": 0x21150000,
	"nbsp": 0x00A00000,
	"nbump": 0x224E0338,
	"nbumpe": 0x224F0338,
	"ncap": 0x2A430000,
	"ncaron": 0x01480000,
	"ncedil": 0x01460000,
	"ncong": 0x22470000,
	"ncongdot": 0x2A6D0338,
	"ncup": 0x2A420000,
	"ncy": 0x043D0000,
	"ndash": 0x20130000,
	"ne": 0x22600000,
	"neArr": 0x21D70000,
	"nearhk": 0x29240000,
	"nearr": 0x21970000,
	"nearrow": 0x21970000,
	"nedot": 0x22500338,
	"nequiv": 0x22620000,
	"nesear": 0x29280000,
	"nesim": 0x22420338,
	"nexist": 0x22040000,
	"nexists": 0x22040000,
	"nfr": 0xD835DD2B,
	"ngE": 0x22670338,
	"nge": 0x22710000,
	"ngeq": 0x22710000,
	"ngeqq": 0x22670338,
	"ngeqslant": 0x2A7E0338,
	"nges": 0x2A7E0338,
	"ngsim": 0x22750000,
	"ngt": 0x226F0000,
	"ngtr": 0x226F0000,
	"nhArr": 0x21CE0000,
	"nharr": 0x21AE0000,
	"nhpar": 0x2AF20000,
	"ni": 0x220B0000,
	"nis": 0x22FC0000,
	"nisd": 0x22FA0000,
	"niv": 0x220B0000,
	"njcy": 0x045A0000,
	"nlArr": 0x21CD0000,
	"nlE": 0x22660338,
	"nlarr": 0x219A0000,
	"nldr": 0x20250000,
	"nle": 0x22700000,
	"nleftarrow": 0x219A0000,
	"nleftrightarrow": 0x21AE0000,
	"nleq": 0x22700000,
	"nleqq": 0x22660338,
	"nleqslant": 0x2A7D0338,
	"nles": 0x2A7D0338,
	"nless": 0x226E0000,
	"nlsim": 0x22740000,
	"nlt": 0x226E0000,
	"nltri": 0x22EA0000,
	"nltrie": 0x22EC0000,
	"nmid": 0x22240000,
	"nopf": 0xD835DD5F,
	"not": 0x00AC0000,
	"notin": 0x22090000,
	"notinE": 0x22F90338,
	"notindot": 0x22F50338,
	"notinva": 0x22090000,
	"notinvb": 0x22F70000,
	"notinvc": 0x22F60000,
	"notni": 0x220C0000,
	"notniva": 0x220C0000,
	"notnivb": 0x22FE0000,
	"notnivc": 0x22FD0000,
	"npar": 0x22260000,
	"nparallel": 0x22260000,
	"nparsl": 0x2AFD20E5,
	"npart": 0x22020338,
	"npolint": 0x2A140000,
	"npr": 0x22800000,
	"nprcue": 0x22E00000,
	"npre": 0x2AAF0338,
	"nprec": 0x22800000,
	"npreceq": 0x2AAF0338,
	"nrArr": 0x21CF0000,
	"nrarr": 0x219B0000,
	"nrarrc": 0x29330338,
	"nrarrw": 0x219D0338,
	"nrightarrow": 0x219B0000,
	"nrtri": 0x22EB0000,
	"nrtrie": 0x22ED0000,
	"nsc": 0x22810000,
	"nsccue": 0x22E10000,
	"nsce": 0x2AB00338,
	"nscr": 0xD835DCC3,
	"nshortmid": 0x22240000,
	"nshortparallel": 0x22260000,
	"nsim": 0x22410000,
	"nsime": 0x22440000,
	"nsimeq": 0x22440000,
	"nsmid": 0x22240000,
	"nspar": 0x22260000,
	"nsqsube": 0x22E20000,
	"nsqsupe": 0x22E30000,
	"nsub": 0x22840000,
	"nsubE": 0x2AC50338,
	"nsube": 0x22880000,
	"nsubset": 0x228220D2,
	"nsubseteq": 0x22880000,
	"nsubseteqq": 0x2AC50338,
	"nsucc": 0x22810000,
	"nsucceq": 0x2AB00338,
	"nsup": 0x22850000,
	"nsupE": 0x2AC60338,
	"nsupe": 0x22890000,
	"nsupset": 0x228320D2,
	"nsupseteq": 0x22890000,
	"nsupseteqq": 0x2AC60338,
	"ntgl": 0x22790000,
	"ntilde": 0x00F10000,
	"ntlg": 0x22780000,
	"ntriangleleft": 0x22EA0000,
	"ntrianglelefteq": 0x22EC0000,
	"ntriangleright": 0x22EB0000,
	"ntrianglerighteq": 0x22ED0000,
	"nu": 0x03BD0000,
	"num": 0x00230000,
	"numero": 0x21160000,
	"numsp": 0x20070000,
	"nvDash": 0x22AD0000,
	"nvHarr": 0x29040000,
	"nvap": 0x224D20D2,
	"nvdash": 0x22AC0000,
	"nvge": 0x226520D2,
	"nvgt": 0x003E20D2,
	"nvinfin": 0x29DE0000,
	"nvlArr": 0x29020000,
	"nvle": 0x226420D2,
	"nvlt": 0x003C20D2,
	"nvltrie": 0x22B420D2,
	"nvrArr": 0x29030000,
	"nvrtrie": 0x22B520D2,
	"nvsim": 0x223C20D2,
	"nwArr": 0x21D60000,
	"nwarhk": 0x29230000,
	"nwarr": 0x21960000,
	"nwarrow": 0x21960000,
	"nwnear": 0x29270000,
	"oS": 0x24C80000,
	"oacute": 0x00F30000,
	"oast": 0x229B0000,
	"ocir": 0x229A0000,
	"ocirc": 0x00F40000,
	"ocy": 0x043E0000,
	"odash": 0x229D0000,
	"odblac": 0x01510000,
	"odiv": 0x2A380000,
	"odot": 0x22990000,
	"odsold": 0x29BC0000,
	"oelig": 0x01530000,
	"ofcir": 0x29BF0000,
	"ofr": 0xD835DD2C,
	"ogon": 0x02DB0000,
	"ograve": 0x00F20000,
	"ogt": 0x29C10000,
	"ohbar": 0x29B50000,
	"ohm": 0x03A90000,
	"oint": 0x222E0000,
	"olarr": 0x21BA0000,
	"olcir": 0x29BE0000,
	"olcross": 0x29BB0000,
	"oline": 0x203E0000,
	"olt": 0x29C00000,
	"omacr": 0x014D0000,
	"omega": 0x03C90000,
	"omicron": 0x03BF0000,
	"omid": 0x29B60000,
	"ominus": 0x22960000,
	"oopf": 0xD835DD60,
	"opar": 0x29B70000,
	"operp": 0x29B90000,
	"oplus": 0x22950000,
	"or": 0x22280000,
	"orarr": 0x21BB0000,
	"ord": 0x2A5D0000,
	"order": 0x21340000,
	"orderof": 0x21340000,
	"ordf": 0x00AA0000,
	"ordm": 0x00BA0000,
	"origof": 0x22B60000,
	"oror": 0x2A560000,
	"orslope": 0x2A570000,
	"orv": 0x2A5B0000,
	"oscr": 0x21340000,
	"oslash": 0x00F80000,
	"osol": 0x22980000,
	"otilde": 0x00F50000,
	"otimes": 0x22970000,
	"otimesas": 0x2A360000,
	"ouml": 0x00F60000,
	"ovbar": 0x233D0000,
	"par": 0x22250000,
	"para": 0x00B60000,
	"parallel": 0x22250000,
	"parsim": 0x2AF30000,
	"parsl": 0x2AFD0000,
	"part": 0x22020000,
	"pcy": 0x043F0000,
	"percnt": 0x00250000,
	"period": 0x002E0000,
	"permil": 0x20300000,
	"perp": 0x22A50000,
	"pertenk": 0x20310000,
	"pfr": 0xD835DD2D,
	"phi": 0x03C60000,
	"phiv": 0x03D50000,
	"phmmat": 0x21330000,
	"phone": 0x260E0000,
	"pi": 0x03C00000,
	"pitchfork": 0x22D40000,
	"piv": 0x03D60000,
	"planck": 0x210F0000,
	"planckh": 0x210E0000,
	"plankv": 0x210F0000,
	"plus": 0x002B0000,
	"plusacir": 0x2A230000,
	"plusb": 0x229E0000,
	"pluscir": 0x2A220000,
	"plusdo": 0x22140000,
	"plusdu": 0x2A250000,
	"pluse": 0x2A720000,
	"plusmn": 0x00B10000,
	"plussim": 0x2A260000,
	"plustwo": 0x2A270000,
	"pm": 0x00B10000,
	"pointint": 0x2A150000,
	"popf": 0xD835DD61,
	"pound": 0x00A30000,
	"pr": 0x227A0000,
	"prE": 0x2AB30000,
	"prap": 0x2AB70000,
	"prcue": 0x227C0000,
	"pre": 0x2AAF0000,
	"prec": 0x227A0000,
	"precapprox": 0x2AB70000,
	"preccurlyeq": 0x227C0000,
	"preceq": 0x2AAF0000,
	"precnapprox": 0x2AB90000,
	"precneqq": 0x2AB50000,
	"precnsim": 0x22E80000,
	"precsim": 0x227E0000,
	"prime": 0x20320000,
	"primes": 0x21190000,
	"prnE": 0x2AB50000,
	"prnap": 0x2AB90000,
	"prnsim": 0x22E80000,
	"prod": 0x220F0000,
	"profalar": 0x232E0000,
	"profline": 0x23120000,
	"profsurf": 0x23130000,
	"prop": 0x221D0000,
	"propto": 0x221D0000,
	"prsim": 0x227E0000,
	"prurel": 0x22B00000,
	"pscr": 0xD835DCC5,
	"psi": 0x03C80000,
	"puncsp": 0x20080000,
	"qfr": 0xD835DD2E,
	"qint": 0x2A0C0000,
	"qopf": 0xD835DD62,
	"qprime": 0x20570000,
	"qscr": 0xD835DCC6,
	"quaternions": 0x210D0000,
	"quatint": 0x2A160000,
	"quest": 0x003F0000,
	"questeq": 0x225F0000,
	"quot": 0x00220000,
	"rAarr": 0x21DB0000,
	"rArr": 0x21D20000,
	"rAtail": 0x291C0000,
	"rBarr": 0x290F0000,
	"rHar": 0x29640000,
	"race": 0x223D0331,
	"racute": 0x01550000,
	"radic": 0x221A0000,
	"raemptyv": 0x29B30000,
	"rang": 0x27E90000,
	"rangd": 0x29920000,
	"range": 0x29A50000,
	"rangle": 0x27E90000,
	"raquo": 0x00BB0000,
	"rarr": 0x21920000,
	"rarrap": 0x29750000,
	"rarrb": 0x21E50000,
	"rarrbfs": 0x29200000,
	"rarrc": 0x29330000,
	"rarrfs": 0x291E0000,
	"rarrhk": 0x21AA0000,
	"rarrlp": 0x21AC0000,
	"rarrpl": 0x29450000,
	"rarrsim": 0x29740000,
	"rarrtl": 0x21A30000,
	"rarrw": 0x219D0000,
	"ratail": 0x291A0000,
	"ratio": 0x22360000,
	"rationals": 0x211A0000,
	"rbarr": 0x290D0000,
	"rbbrk": 0x27730000,
	"rbrace": 0x007D0000,
	"rbrack": 0x005D0000,
	"rbrke": 0x298C0000,
	"rbrksld": 0x298E0000,
	"rbrkslu": 0x29900000,
	"rcaron": 0x01590000,
	"rcedil": 0x01570000,
	"rceil": 0x23090000,
	"rcub": 0x007D0000,
	"rcy": 0x04400000,
	"rdca": 0x29370000,
	"rdldhar": 0x29690000,
	"rdquo": 0x201D0000,
	"rdquor": 0x201D0000,
	"rdsh": 0x21B30000,
	"real": 0x211C0000,
	"realine": 0x211B0000,
	"realpart": 0x211C0000,
	"reals": 0x211D0000,
	"rect": 0x25AD0000,
	"reg": 0x00AE0000,
	"rfisht": 0x297D0000,
	"rfloor": 0x230B0000,
	"rfr": 0xD835DD2F,
	"rhard": 0x21C10000,
	"rharu": 0x21C00000,
	"rharul": 0x296C0000,
	"rho": 0x03C10000,
	"rhov": 0x03F10000,
	"rightarrow": 0x21920000,
	"rightarrowtail": 0x21A30000,
	"rightharpoondown": 0x21C10000,
	"rightharpoonup": 0x21C00000,
	"rightleftarrows": 0x21C40000,
	"rightleftharpoons": 0x21CC0000,
	"rightrightarrows": 0x21C90000,
	"rightsquigarrow": 0x219D0000,
	"rightthreetimes": 0x22CC0000,
	"ring": 0x02DA0000,
	"risingdotseq": 0x22530000,
	"rlarr": 0x21C40000,
	"rlhar": 0x21CC0000,
	"rlm": 0x200F0000,
	"rmoust": 0x23B10000,
	"rmoustache": 0x23B10000,
	"rnmid": 0x2AEE0000,
	"roang": 0x27ED0000,
	"roarr": 0x21FE0000,
	"robrk": 0x27E70000,
	"ropar": 0x29860000,
	"ropf": 0xD835DD63,
	"roplus": 0x2A2E0000,
	"rotimes": 0x2A350000,
	"rpar": 0x00290000,
	"rpargt": 0x29940000,
	"rppolint": 0x2A120000,
	"rrarr": 0x21C90000,
	"rsaquo": 0x203A0000,
	"rscr": 0xD835DCC7,
	"rsh": 0x21B10000,
	"rsqb": 0x005D0000,
	"rsquo": 0x20190000,
	"rsquor": 0x20190000,
	"rthree": 0x22CC0000,
	"rtimes": 0x22CA0000,
	"rtri": 0x25B90000,
	"rtrie": 0x22B50000,
	"rtrif": 0x25B80000,
	"rtriltri": 0x29CE0000,
	"ruluhar": 0x29680000,
	"rx": 0x211E0000,
	"sacute": 0x015B0000,
	"sbquo": 0x201A0000,
	"sc": 0x227B0000,
	"scE": 0x2AB40000,
	"scap": 0x2AB80000,
	"scaron": 0x01610000,
	"sccue": 0x227D0000,
	"sce": 0x2AB00000,
	"scedil": 0x015F0000,
	"scirc": 0x015D0000,
	"scnE": 0x2AB60000,
	"scnap": 0x2ABA0000,
	"scnsim": 0x22E90000,
	"scpolint": 0x2A130000,
	"scsim": 0x227F0000,
	"scy": 0x04410000,
	"sdot": 0x22C50000,
	"sdotb": 0x22A10000,
	"sdote": 0x2A660000,
	"seArr": 0x21D80000,
	"searhk": 0x29250000,
	"searr": 0x21980000,
	"searrow": 0x21980000,
	"sect": 0x00A70000,
	"semi": 0x003B0000,
	"seswar": 0x29290000,
	"setminus": 0x22160000,
	"setmn": 0x22160000,
	"sext": 0x27360000,
	"sfr": 0xD835DD30,
	"sfrown": 0x23220000,
	"sharp": 0x266F0000,
	"shchcy": 0x04490000,
	"shcy": 0x04480000,
	"shortmid": 0x22230000,
	"shortparallel": 0x22250000,
	"shy": 0x00AD0000,
	"sigma": 0x03C30000,
	"sigmaf": 0x03C20000,
	"sigmav": 0x03C20000,
	"sim": 0x223C0000,
	"simdot": 0x2A6A0000,
	"sime": 0x22430000,
	"simeq": 0x22430000,
	"simg": 0x2A9E0000,
	"simgE": 0x2AA00000,
	"siml": 0x2A9D0000,
	"simlE": 0x2A9F0000,
	"simne": 0x22460000,
	"simplus": 0x2A240000,
	"simrarr": 0x29720000,
	"slarr": 0x21900000,
	"smallsetminus": 0x22160000,
	"smashp": 0x2A330000,
	"smeparsl": 0x29E40000,
	"smid": 0x22230000,
	"smile": 0x23230000,
	"smt": 0x2AAA0000,
	"smte": 0x2AAC0000,
	"smtes": 0x2AACFE00,
	"softcy": 0x044C0000,
	"sol": 0x002F0000,
	"solb": 0x29C40000,
	"solbar": 0x233F0000,
	"sopf": 0xD835DD64,
	"spades": 0x26600000,
	"spadesuit": 0x26600000,
	"spar": 0x22250000,
	"sqcap": 0x22930000,
	"sqcaps": 0x2293FE00,
	"sqcup": 0x22940000,
	"sqcups": 0x2294FE00,
	"sqsub": 0x228F0000,
	"sqsube": 0x22910000,
	"sqsubset": 0x228F0000,
	"sqsubseteq": 0x22910000,
	"sqsup": 0x22900000,
	"sqsupe": 0x22920000,
	"sqsupset": 0x22900000,
	"sqsupseteq": 0x22920000,
	"squ": 0x25A10000,
	"square": 0x25A10000,
	"squarf": 0x25AA0000,
	"squf": 0x25AA0000,
	"srarr": 0x21920000,
	"sscr": 0xD835DCC8,
	"ssetmn": 0x22160000,
	"ssmile": 0x23230000,
	"sstarf": 0x22C60000,
	"star": 0x26060000,
	"starf": 0x26050000,
	"straightepsilon": 0x03F50000,
	"straightphi": 0x03D50000,
	"strns": 0x00AF0000,
	"sub": 0x22820000,
	"subE": 0x2AC50000,
	"subdot": 0x2ABD0000,
	"sube": 0x22860000,
	"subedot": 0x2AC30000,
	"submult": 0x2AC10000,
	"subnE": 0x2ACB0000,
	"subne": 0x228A0000,
	"subplus": 0x2ABF0000,
	"subrarr": 0x29790000,
	"subset": 0x22820000,
	"subseteq": 0x22860000,
	"subseteqq": 0x2AC50000,
	"subsetneq": 0x228A0000,
	"subsetneqq": 0x2ACB0000,
	"subsim": 0x2AC70000,
	"subsub": 0x2AD50000,
	"subsup": 0x2AD30000,
	"succ": 0x227B0000,
	"succapprox": 0x2AB80000,
	"succcurlyeq": 0x227D0000,
	"succeq": 0x2AB00000,
	"succnapprox": 0x2ABA0000,
	"succneqq": 0x2AB60000,
	"succnsim": 0x22E90000,
	"succsim": 0x227F0000,
	"sum": 0x22110000,
	"sung": 0x266A0000,
	"sup": 0x22830000,
	"sup1": 0x00B90000,
	"sup2": 0x00B20000,
	"sup3": 0x00B30000,
	"supE": 0x2AC60000,
	"supdot": 0x2ABE0000,
	"supdsub": 0x2AD80000,
	"supe": 0x22870000,
	"supedot": 0x2AC40000,
	"suphsol": 0x27C90000,
	"suphsub": 0x2AD70000,
	"suplarr": 0x297B0000,
	"supmult": 0x2AC20000,
	"supnE": 0x2ACC0000,
	"supne": 0x228B0000,
	"supplus": 0x2AC00000,
	"supset": 0x22830000,
	"supseteq": 0x22870000,
	"supseteqq": 0x2AC60000,
	"supsetneq": 0x228B0000,
	"supsetneqq": 0x2ACC0000,
	"supsim": 0x2AC80000,
	"supsub": 0x2AD40000,
	"supsup": 0x2AD60000,
	"swArr": 0x21D90000,
	"swarhk": 0x29260000,
	"swarr": 0x21990000,
	"swarrow": 0x21990000,
	"swnwar": 0x292A0000,
	"szlig": 0x00DF0000,
	"target": 0x23160000,
	"tau": 0x03C40000,
	"tbrk": 0x23B40000,
	"tcaron": 0x01650000,
	"tcedil": 0x01630000,
	"tcy": 0x04420000,
	"tdot": 0x20DB0000,
	"telrec": 0x23150000,
	"tfr": 0xD835DD31,
	"there4": 0x22340000,
	"therefore": 0x22340000,
	"theta": 0x03B80000,
	"thetasym": 0x03D10000,
	"thetav": 0x03D10000,
	"thickapprox": 0x22480000,
	"thicksim": 0x223C0000,
	"thinsp": 0x20090000,
	"thkap": 0x22480000,
	"thksim": 0x223C0000,
	"thorn": 0x00FE0000,
	"tilde": 0x02DC0000,
	"times": 0x00D70000,
	"timesb": 0x22A00000,
	"timesbar": 0x2A310000,
	"timesd": 0x2A300000,
	"tint": 0x222D0000,
	"toea": 0x29280000,
	"top": 0x22A40000,
	"topbot": 0x23360000,
	"topcir": 0x2AF10000,
	"topf": 0xD835DD65,
	"topfork": 0x2ADA0000,
	"tosa": 0x29290000,
	"tprime": 0x20340000,
	"trade": 0x21220000,
	"triangle": 0x25B50000,
	"triangledown": 0x25BF0000,
	"triangleleft": 0x25C30000,
	"trianglelefteq": 0x22B40000,
	"triangleq": 0x225C0000,
	"triangleright": 0x25B90000,
	"trianglerighteq": 0x22B50000,
	"tridot": 0x25EC0000,
	"trie": 0x225C0000,
	"triminus": 0x2A3A0000,
	"triplus": 0x2A390000,
	"trisb": 0x29CD0000,
	"tritime": 0x2A3B0000,
	"trpezium": 0x23E20000,
	"tscr": 0xD835DCC9,
	"tscy": 0x04460000,
	"tshcy": 0x045B0000,
	"tstrok": 0x01670000,
	"twixt": 0x226C0000,
	"twoheadleftarrow": 0x219E0000,
	"twoheadrightarrow": 0x21A00000,
	"uArr": 0x21D10000,
	"uHar": 0x29630000,
	"uacute": 0x00FA0000,
	"uarr": 0x21910000,
	"ubrcy": 0x045E0000,
	"ubreve": 0x016D0000,
	"ucirc": 0x00FB0000,
	"ucy": 0x04430000,
	"udarr": 0x21C50000,
	"udblac": 0x01710000,
	"udhar": 0x296E0000,
	"ufisht": 0x297E0000,
	"ufr": 0xD835DD32,
	"ugrave": 0x00F90000,
	"uharl": 0x21BF0000,
	"uharr": 0x21BE0000,
	"uhblk": 0x25800000,
	"ulcorn": 0x231C0000,
	"ulcorner": 0x231C0000,
	"ulcrop": 0x230F0000,
	"ultri": 0x25F80000,
	"umacr": 0x016B0000,
	"uml": 0x00A80000,
	"uogon": 0x01730000,
	"uopf": 0xD835DD66,
	"uparrow": 0x21910000,
	"updownarrow": 0x21950000,
	"upharpoonleft": 0x21BF0000,
	"upharpoonright": 0x21BE0000,
	"uplus": 0x228E0000,
	"upsi": 0x03C50000,
	"upsih": 0x03D20000,
	"upsilon": 0x03C50000,
	"upuparrows": 0x21C80000,
	"urcorn": 0x231D0000,
	"urcorner": 0x231D0000,
	"urcrop": 0x230E0000,
	"uring": 0x016F0000,
	"urtri": 0x25F90000,
	"uscr": 0xD835DCCA,
	"utdot": 0x22F00000,
	"utilde": 0x01690000,
	"utri": 0x25B50000,
	"utrif": 0x25B40000,
	"uuarr": 0x21C80000,
	"uuml": 0x00FC0000,
	"uwangle": 0x29A70000,
	"vArr": 0x21D50000,
	"vBar": 0x2AE80000,
	"vBarv": 0x2AE90000,
	"vDash": 0x22A80000,
	"vangrt": 0x299C0000,
	"varepsilon": 0x03F50000,
	"varkappa": 0x03F00000,
	"varnothing": 0x22050000,
	"varphi": 0x03D50000,
	"varpi": 0x03D60000,
	"varpropto": 0x221D0000,
	"varr": 0x21950000,
	"varrho": 0x03F10000,
	"varsigma": 0x03C20000,
	"varsubsetneq": 0x228AFE00,
	"varsubsetneqq": 0x2ACBFE00,
	"varsupsetneq": 0x228BFE00,
	"varsupsetneqq": 0x2ACCFE00,
	"vartheta": 0x03D10000,
	"vartriangleleft": 0x22B20000,
	"vartriangleright": 0x22B30000,
	"vcy": 0x04320000,
	"vdash": 0x22A20000,
	"vee": 0x22280000,
	"veebar": 0x22BB0000,
	"veeeq": 0x225A0000,
	"vellip": 0x22EE0000,
	"verbar": 0x007C0000,
	"vert": 0x007C0000,
	"vfr": 0xD835DD33,
	"vltri": 0x22B20000,
	"vnsub": 0x228220D2,
	"vnsup": 0x228320D2,
	"vopf": 0xD835DD67,
	"vprop": 0x221D0000,
	"vrtri": 0x22B30000,
	"vscr": 0xD835DCCB,
	"vsubnE": 0x2ACBFE00,
	"vsubne": 0x228AFE00,
	"vsupnE": 0x2ACCFE00,
	"vsupne": 0x228BFE00,
	"vzigzag": 0x299A0000,
	"wcirc": 0x01750000,
	"wedbar": 0x2A5F0000,
	"wedge": 0x22270000,
	"wedgeq": 0x22590000,
	"weierp": 0x21180000,
	"wfr": 0xD835DD34,
	"wopf": 0xD835DD68,
	"wp": 0x21180000,
	"wr": 0x22400000,
	"wreath": 0x22400000,
	"wscr": 0xD835DCCC,
	"xcap": 0x22C20000,
	"xcirc": 0x25EF0000,
	"xcup": 0x22C30000,
	"xdtri": 0x25BD0000,
	"xfr": 0xD835DD35,
	"xhArr": 0x27FA0000,
	"xharr": 0x27F70000,
	"xi": 0x03BE0000,
	"xlArr": 0x27F80000,
	"xlarr": 0x27F50000,
	"xmap": 0x27FC0000,
	"xnis": 0x22FB0000,
	"xodot": 0x2A000000,
	"xopf": 0xD835DD69,
	"xoplus": 0x2A010000,
	"xotime": 0x2A020000,
	"xrArr": 0x27F90000,
	"xrarr": 0x27F60000,
	"xscr": 0xD835DCCD,
	"xsqcup": 0x2A060000,
	"xuplus": 0x2A040000,
	"xutri": 0x25B30000,
	"xvee": 0x22C10000,
	"xwedge": 0x22C00000,
	"yacute": 0x00FD0000,
	"yacy": 0x044F0000,
	"ycirc": 0x01770000,
	"ycy": 0x044B0000,
	"yen": 0x00A50000,
	"yfr": 0xD835DD36,
	"yicy": 0x04570000,
	"yopf": 0xD835DD6A,
	"yscr": 0xD835DCCE,
	"yucy": 0x044E0000,
	"yuml": 0x00FF0000,
	"zacute": 0x017A0000,
	"zcaron": 0x017E0000,
	"zcy": 0x04370000,
	"zdot": 0x017C0000,
	"zeetrf": 0x21280000,
	"zeta": 0x03B60000,
	"zfr": 0xD835DD37,
	"zhcy": 0x04360000,
	"zigrarr": 0x21DD0000,
	"zopf": 0xD835DD6B,
	"zscr": 0xD835DCCF,
	"zwj": 0x200D0000,
	"zwnj": 0x200C0000,
}

// longestName is the length of the longest registered reference name.
const longestName = 31
