package engine

// defaultLexicon maps lowercase words to valences in [-5, 5], in the
// AFINN style. It skews toward the vocabulary of retail and fashion
// social posts, since that is what the exports contain.
var defaultLexicon = map[string]float64{
	// strongly positive
	"outstanding":   5,
	"breathtaking":  5,
	"superb":        5,
	"amazing":       4,
	"awesome":       4,
	"fabulous":      4,
	"fantastic":     4,
	"gorgeous":      4,
	"incredible":    4,
	"stunning":      4,
	"wonderful":     4,
	"flawless":      4,
	"love":          3,
	"loved":         3,
	"loving":        3,
	"beautiful":     3,
	"best":          3,
	"brilliant":     3,
	"excellent":     3,
	"exquisite":     3,
	"perfect":       3,
	"iconic":        3,
	"obsessed":      3,
	"adorable":      3,
	"elegant":       3,
	"luxurious":     3,
	"chic":          3,
	"radiant":       3,
	"dreamy":        3,
	"great":         2,
	"happy":         2,
	"stylish":       2,
	"trendy":        2,
	"fresh":         2,
	"cozy":          2,
	"cute":          2,
	"fun":           2,
	"glam":          2,
	"glow":          2,
	"favorite":      2,
	"favourite":     2,
	"win":           2,
	"winner":        2,
	"deal":          2,
	"bargain":       2,
	"exclusive":     2,
	"premium":       2,
	"quality":       2,
	"comfy":         2,
	"soft":          2,
	"smooth":        2,
	"vibrant":       2,
	"bold":          2,
	"sleek":         2,
	"enjoy":         2,
	"enjoyed":       2,
	"recommend":     2,
	"recommended":   2,
	"thrilled":      3,
	"delighted":     3,
	"grateful":      3,
	"excited":       3,
	"celebrate":     3,
	"celebrating":   3,
	"good":          1,
	"nice":          1,
	"new":           1,
	"sale":          1,
	"save":          1,
	"thanks":        1,
	"thank":         1,
	"like":          1,
	"wow":           2,
	"yay":           2,
	"slay":          3,
	"fire":          3,
	"lit":           3,
	"goals":         2,
	"must":          1,
	"essential":     1,
	"classic":       1,
	"timeless":      2,

	// strongly negative
	"horrible":      -4,
	"terrible":      -4,
	"awful":         -4,
	"disgusting":    -4,
	"worst":         -4,
	"hate":          -3,
	"hated":         -3,
	"scam":          -4,
	"fraud":         -4,
	"ripoff":        -4,
	"garbage":       -3,
	"trash":         -3,
	"ugly":          -3,
	"cheap":         -2,
	"flimsy":        -2,
	"bad":           -2,
	"poor":          -2,
	"disappointed":  -3,
	"disappointing": -3,
	"disappoint":    -3,
	"overpriced":    -3,
	"broken":        -2,
	"damaged":       -2,
	"defective":     -3,
	"refund":        -1,
	"return":        -1,
	"returned":      -1,
	"complaint":     -2,
	"complain":      -2,
	"slow":          -1,
	"late":          -1,
	"delay":         -1,
	"delayed":       -2,
	"rude":          -3,
	"unhelpful":     -2,
	"ignored":       -2,
	"boring":        -2,
	"bland":         -1,
	"meh":           -1,
	"fail":          -2,
	"failed":        -2,
	"worse":         -3,
	"never":         -1,
	"avoid":         -2,
	"regret":        -3,
	"waste":         -2,
	"wasted":        -2,
	"annoying":      -2,
	"annoyed":       -2,
	"frustrating":   -3,
	"frustrated":    -3,
	"angry":         -3,
	"upset":         -2,
	"sad":           -2,
	"cry":           -2,
	"mess":          -2,
	"nightmare":     -4,
	"shady":         -3,
	"fake":          -3,
	"misleading":    -3,
	"uncomfortable": -2,
	"itchy":         -2,
	"shrunk":        -2,
	"faded":         -1,
	"stain":         -2,
	"stained":       -2,
}
