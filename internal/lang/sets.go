package lang

// sets is the language strategy table. Keyed by BCP 47 base code; selection
// happens exclusively through ForLanguage.
var sets = map[string]*PatternSet{
	"en": english,
	"fr": french,
	"es": spanish,
	"it": italian,
	"nl": dutch,
	"de": german,
}

var english = &PatternSet{
	Name: "english",
	Code: "en",
	Passive: compileAll(
		`(?i)\b(?:am|is|are|was|were|be|been|being)\s+(?:\w+ly\s+)?(?:\w+(?:ed|wn|en)|made|held|kept|sent|found|put|set|told|shown|known|given|taken|done|begun|brought|bought|caught|taught|thought|sold|paid|left|lost|met|read|said|seen|understood|written|built)\b`,
		`(?i)\b(?:has|have|had)\s+been\s+\w+(?:ed|wn|en)\b`,
	),
	AllowedPassive: compileAll(
		`(?i)\b(?:is|are|was|were)\s+(?:defined|known|called|termed|named|classified|categorized|regarded|considered)\s+(?:as\b)?`,
		`(?i)\b(?:is|are)\s+referred\s+to\s+as\b`,
	),
	StopWords: wordSet(
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "when",
		"at", "by", "for", "with", "about", "against", "between", "into",
		"through", "during", "before", "after", "above", "below", "to",
		"from", "up", "down", "in", "out", "on", "off", "over", "under",
		"again", "further", "once", "here", "there", "all", "any", "both",
		"each", "few", "more", "most", "other", "some", "such", "no", "nor",
		"not", "only", "own", "same", "so", "than", "too", "very", "can",
		"will", "just", "should", "now", "is", "are", "was", "were", "be",
		"been", "being", "have", "has", "had", "do", "does", "did", "of",
		"it", "its", "this", "that", "these", "those", "as",
	),
	Transitions: []string{
		"in addition", "for example", "for instance", "on the other hand",
		"as a result", "in contrast", "in other words", "at the same time",
		"in summary", "in conclusion", "first of all", "more importantly",
		"as mentioned above", "in this case", "with that in mind",
	},
	WeakConnectors: []string{
		"and then", "also", "as well as", "along with", "but also",
	},
	ChainingPronouns: wordSet(
		"this", "these", "that", "those", "it", "they", "such", "he", "she",
		"both", "either",
	),
	Abbreviations: wordSet(
		"dr", "mr", "mrs", "ms", "prof", "sr", "jr", "st", "vs", "etc",
		"e.g", "i.e", "cf", "approx", "dept", "fig", "inc", "ltd", "no",
		"vol", "al",
	),
	Vowels: "aeiouy",
	SyllableAdjust: map[string]int{
		"ia": 1, "eo": 1, "ii": 1, "io": 1, "ua": 1, "uo": 1,
	},
	SilentFinalE: true,
	Formula:      FormulaFleschKincaid,
}

var french = &PatternSet{
	Name: "french",
	Code: "fr",
	Passive: compileAll(
		`(?i)\b(?:est|sont|était|étaient|sera|seront|fut|furent)\s+\w+(?:é|ée|és|ées|i|ie|is|ies|u|ue|us|ues|it|ite|its|ites)\b`,
		`(?i)\b(?:a|ont)\s+été\s+\w+(?:é|ée|és|ées|u|ue|us|ues)\b`,
	),
	AllowedPassive: compileAll(
		`(?i)\b(?:est|sont)\s+(?:défini|définie|définis|définies|appelé|appelée|appelés|appelées|considéré|considérée|considérés|considérées|connu|connue|connus|connues|classé|classée)\b`,
	),
	StopWords: wordSet(
		"le", "la", "les", "un", "une", "des", "du", "de", "d", "l", "et",
		"ou", "mais", "donc", "or", "ni", "car", "que", "qui", "quoi",
		"dont", "où", "à", "au", "aux", "avec", "sans", "sous", "sur",
		"dans", "par", "pour", "en", "vers", "chez", "entre", "pendant",
		"avant", "après", "est", "sont", "était", "être", "avoir", "a",
		"ont", "ce", "cette", "ces", "cet", "son", "sa", "ses", "leur",
		"leurs", "il", "elle", "ils", "elles", "on", "nous", "vous", "se",
		"ne", "pas", "plus", "très", "aussi", "comme", "tout", "tous",
	),
	Transitions: []string{
		"en outre", "par exemple", "en revanche", "par conséquent",
		"en d'autres termes", "d'autre part", "en résumé", "en conclusion",
		"tout d'abord", "de plus", "dans ce cas", "par ailleurs",
	},
	WeakConnectors: []string{
		"et puis", "aussi", "ainsi que", "de même que",
	},
	ChainingPronouns: wordSet(
		"ce", "cette", "ces", "cela", "ceci", "celui-ci", "celle-ci", "il",
		"elle", "ils", "elles", "cet",
	),
	Abbreviations: wordSet(
		"m", "mme", "mlle", "dr", "me", "st", "ste", "etc", "cf", "ex",
		"env", "fig", "vol", "art",
	),
	Vowels: "aeiouyàâéèêëîïôùûü",
	SyllableAdjust: map[string]int{
		"éa": 1, "éo": 1, "ïa": 1,
	},
	Formula: FormulaFleschKincaid,
}

var spanish = &PatternSet{
	Name: "spanish",
	Code: "es",
	Passive: compileAll(
		`(?i)\b(?:es|son|era|eran|fue|fueron|será|serán)\s+\w+(?:ado|ada|ados|adas|ido|ida|idos|idas|to|ta|tos|tas|cho|cha|chos|chas)\b`,
		`(?i)\b(?:ha|han)\s+sido\s+\w+(?:ado|ada|ados|adas|ido|ida|idos|idas)\b`,
	),
	AllowedPassive: compileAll(
		`(?i)\bse\s+(?:define|denomina|conoce|considera|clasifica)\s+como\b`,
		`(?i)\b(?:es|son)\s+(?:conocido|conocida|conocidos|conocidas|considerado|considerada|llamado|llamada|definido|definida)\b`,
	),
	StopWords: wordSet(
		"el", "la", "los", "las", "un", "una", "unos", "unas", "y", "o",
		"pero", "si", "no", "ni", "que", "quien", "cuyo", "donde", "a",
		"al", "de", "del", "en", "con", "sin", "sobre", "bajo", "por",
		"para", "entre", "hacia", "hasta", "durante", "antes", "después",
		"es", "son", "era", "ser", "estar", "está", "están", "ha", "han",
		"este", "esta", "estos", "estas", "ese", "esa", "su", "sus", "se",
		"lo", "le", "les", "mas", "más", "muy", "también", "como", "todo",
		"todos", "otra", "otro",
	),
	Transitions: []string{
		"además", "por ejemplo", "en cambio", "por lo tanto",
		"en otras palabras", "por otra parte", "en resumen",
		"en conclusión", "en primer lugar", "en este caso", "sin embargo",
	},
	WeakConnectors: []string{
		"y luego", "también", "así como", "junto con",
	},
	ChainingPronouns: wordSet(
		"este", "esta", "estos", "estas", "esto", "ese", "esa", "eso",
		"ello", "él", "ella", "ellos", "ellas", "dicho", "dicha",
	),
	Abbreviations: wordSet(
		"sr", "sra", "srta", "dr", "dra", "d", "ud", "uds", "etc", "ej",
		"pág", "fig", "núm", "aprox",
	),
	Vowels: "aeiouáéíóúü",
	SyllableAdjust: map[string]int{
		"ía": 1, "ío": 1, "aí": 1, "eí": 1, "úa": 1, "úo": 1,
	},
	Formula: FormulaFernandezHuerta,
}

var italian = &PatternSet{
	Name: "italian",
	Code: "it",
	Passive: compileAll(
		`(?i)\b(?:è|sono|era|erano|fu|furono|sarà|saranno|viene|vengono|venne|vennero)\s+(?:stato\s+|stata\s+|stati\s+|state\s+)?\w+(?:ato|ata|ati|ate|uto|uta|uti|ute|ito|ita|iti|ite|so|sa|si|se|tto|tta|tti|tte)\b`,
	),
	AllowedPassive: compileAll(
		`(?i)\b(?:è|sono)\s+(?:definito|definita|definiti|definite|chiamato|chiamata|chiamati|chiamate|noto|nota|noti|note|considerato|considerata|considerati|considerate)\b`,
		`(?i)\bsi\s+definisce\b`,
	),
	StopWords: wordSet(
		"il", "lo", "la", "i", "gli", "le", "un", "uno", "una", "e", "o",
		"ma", "se", "non", "né", "che", "chi", "cui", "dove", "a", "ad",
		"al", "allo", "alla", "ai", "agli", "alle", "di", "del", "dello",
		"della", "dei", "degli", "delle", "da", "dal", "in", "nel", "nella",
		"con", "su", "sul", "sulla", "per", "tra", "fra", "durante", "è",
		"sono", "era", "essere", "avere", "ha", "hanno", "questo", "questa",
		"questi", "queste", "quello", "quella", "suo", "sua", "suoi", "sue",
		"si", "lo", "li", "più", "molto", "anche", "come", "tutto", "tutti",
	),
	Transitions: []string{
		"inoltre", "per esempio", "ad esempio", "al contrario",
		"di conseguenza", "in altre parole", "d'altra parte", "in sintesi",
		"in conclusione", "prima di tutto", "in questo caso", "tuttavia",
	},
	WeakConnectors: []string{
		"e poi", "anche", "così come", "insieme a",
	},
	ChainingPronouns: wordSet(
		"questo", "questa", "questi", "queste", "ciò", "esso", "essa",
		"essi", "esse", "tale", "tali", "quello", "quella",
	),
	Abbreviations: wordSet(
		"sig", "sigg", "dott", "prof", "avv", "ing", "ecc", "es", "pag",
		"fig", "n", "vol", "art",
	),
	Vowels: "aeiouàèéìòù",
	SyllableAdjust: map[string]int{
		"ìa": 1, "ìo": 1, "aì": 1, "ùa": 1,
	},
	Formula: FormulaGulpease,
}

var dutch = &PatternSet{
	Name: "dutch",
	Code: "nl",
	Passive: compileAll(
		`(?i)\b(?:wordt|worden|werd|werden)\s+(?:\w+\s+){0,2}?ge\w+(?:d|t|en)\b`,
		`(?i)\b(?:is|zijn|was|waren)\s+ge\w+(?:d|t|en)\b`,
	),
	AllowedPassive: compileAll(
		`(?i)\bwordt\s+gedefinieerd\s+als\b`,
		`(?i)\bstaat\s+bekend\s+als\b`,
		`(?i)\b(?:wordt|worden)\s+(?:beschouwd|aangeduid|genoemd)\b`,
	),
	StopWords: wordSet(
		"de", "het", "een", "en", "of", "maar", "als", "dan", "dat", "die",
		"dit", "deze", "wie", "wat", "waar", "aan", "bij", "voor", "met",
		"over", "tegen", "tussen", "door", "tijdens", "voordat", "nadat",
		"boven", "onder", "naar", "van", "uit", "op", "af", "in", "is",
		"zijn", "was", "waren", "wordt", "worden", "heeft", "hebben", "had",
		"doet", "doen", "deed", "er", "hier", "daar", "alle", "elke",
		"sommige", "zo", "te", "ook", "zeer", "kan", "zal", "niet", "geen",
		"wel", "nog", "al", "om",
	),
	Transitions: []string{
		"bovendien", "bijvoorbeeld", "daarentegen", "als gevolg daarvan",
		"met andere woorden", "aan de andere kant", "samengevat",
		"tot slot", "allereerst", "in dit geval", "daarnaast", "echter",
	},
	WeakConnectors: []string{
		"en dan", "ook", "evenals", "samen met",
	},
	ChainingPronouns: wordSet(
		"dit", "deze", "dat", "die", "het", "ze", "zij", "hij", "daardoor",
		"daarmee", "hierdoor", "hiermee", "zo'n", "zulke",
	),
	Abbreviations: wordSet(
		"dhr", "mevr", "dr", "drs", "ir", "mr", "prof", "st", "enz", "bv",
		"o.a", "d.w.z", "blz", "fig", "nr", "ca",
	),
	Vowels: "aeiouy",
	SyllableAdjust: map[string]int{
		"eë": 1, "ië": 1, "eï": 1, "oë": 1,
	},
	Formula: FormulaBrouwer,
}

var german = &PatternSet{
	Name: "german",
	Code: "de",
	Passive: compileAll(
		`(?i)\b(?:wird|werden|wurde|wurden)\s+(?:\w+\s+){0,2}?(?:ge\w+t|ge\w+en|\w+iert)\b`,
		`(?i)\b(?:ist|sind|war|waren)\s+(?:ge\w+t|ge\w+en|\w+iert)\s+worden\b`,
	),
	AllowedPassive: compileAll(
		`(?i)\bwird\s+(?:definiert|bezeichnet|genannt)\s+als\b`,
		`(?i)\bist\s+bekannt\s+als\b`,
		`(?i)\bwird\s+als\s+\w+\s+(?:bezeichnet|definiert|verstanden)\b`,
		`(?i)\bgilt\s+als\b`,
	),
	StopWords: wordSet(
		"der", "die", "das", "ein", "eine", "einer", "eines", "einem",
		"einen", "und", "oder", "aber", "wenn", "dann", "dass", "weil",
		"wer", "was", "wo", "an", "bei", "für", "mit", "über", "gegen",
		"zwischen", "durch", "während", "vor", "nach", "unter", "zu",
		"zur", "zum", "von", "vom", "aus", "auf", "ab", "in", "im", "ist",
		"sind", "war", "waren", "wird", "werden", "hat", "haben", "hatte",
		"es", "sie", "er", "dies", "diese", "dieser", "dieses", "sein",
		"seine", "ihr", "ihre", "sich", "nicht", "kein", "auch", "sehr",
		"kann", "so", "als", "wie", "alle", "noch", "nur", "um", "den",
		"dem", "des",
	),
	Transitions: []string{
		"außerdem", "zum beispiel", "beispielsweise", "im gegensatz dazu",
		"infolgedessen", "mit anderen worten", "andererseits",
		"zusammenfassend", "abschließend", "zunächst", "in diesem fall",
		"darüber hinaus", "jedoch",
	},
	WeakConnectors: []string{
		"und dann", "auch", "sowie", "zusammen mit",
	},
	ChainingPronouns: wordSet(
		"dies", "diese", "dieser", "dieses", "das", "es", "sie", "er",
		"dadurch", "damit", "hierdurch", "hiermit", "solche", "solcher",
	),
	Abbreviations: wordSet(
		"dr", "prof", "hr", "fr", "nr", "bzw", "usw", "z.b", "d.h", "ca",
		"ggf", "evtl", "abb", "s", "vgl",
	),
	Vowels: "aeiouyäöü",
	SyllableAdjust: map[string]int{
		"io": 1, "ea": 1,
	},
	Formula: FormulaFleschKincaid,
}
