package story

import "github.com/tatianab/bilingual-text-game/internal/models"

var (
	And = models.BilingualText{L1: "and", L2: "agus"}
	Or  = models.BilingualText{L1: "or", L2: "no"}
)

// Named is an entity name to be listed.
type Named struct {
	Kind EntityKind
	Name models.BilingualText
}

// OxfordList joins names as "a", "a and b" or "a, b, and c".
func OxfordList(names []Named, conjunction models.BilingualText) []ParagraphElement {
	var list []ParagraphElement
	for i, n := range names {
		if i > 0 && len(names) > 2 {
			list = append(list, StaticText{Text: ","})
		}
		if i > 0 && i == len(names)-1 {
			list = append(list, FromText(conjunction))
		}
		list = append(list, Bilingual{
			L1: []Fragment{Ref(n.Kind, n.Name.L1)},
			L2: []Fragment{Ref(n.Kind, n.Name.L2)},
		})
	}
	return list
}

// JoinNames joins names into one sentence fragment per language: "a, b, and
// c" in L1 and "a, b agus c" in L2.
func JoinNames(names []Named, conjunction models.BilingualText) Bilingual {
	var b Bilingual
	for i, n := range names {
		switch {
		case i == 0:
		case i < len(names)-1:
			b.L1 = append(b.L1, Text(", "))
			b.L2 = append(b.L2, Text(", "))
		case len(names) > 2:
			b.L1 = append(b.L1, Text(", "+conjunction.L1+" "))
			b.L2 = append(b.L2, Text(" "+conjunction.L2+" "))
		default:
			b.L1 = append(b.L1, Text(" "+conjunction.L1+" "))
			b.L2 = append(b.L2, Text(" "+conjunction.L2+" "))
		}
		b.L1 = append(b.L1, Ref(n.Kind, n.Name.L1))
		b.L2 = append(b.L2, Ref(n.Kind, n.Name.L2))
	}
	return b
}
