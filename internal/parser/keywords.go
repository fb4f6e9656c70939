package parser

import "github.com/tatianab/bilingual-text-game/internal/models"

// Keywords are the command words recognised by the default parser.
type Keywords struct {
	Help      models.BilingualText
	Look      models.BilingualText
	Inventory models.BilingualText
	Go        models.BilingualText
	Take      models.BilingualText
	Fight     models.BilingualText
	Wait      models.BilingualText
}

func DefaultKeywords() Keywords {
	return Keywords{
		Help:      models.BilingualText{L1: "help", L2: "cuideachadh"},
		Look:      models.BilingualText{L1: "look", L2: "seall"},
		Inventory: models.BilingualText{L1: "inventory", L2: "maoin-chunntas"},
		Go:        models.BilingualText{L1: "go", L2: "rach"},
		Take:      models.BilingualText{L1: "take", L2: "gabh"},
		Fight:     models.BilingualText{L1: "fight", L2: "sabaidich"},
		Wait:      models.BilingualText{L1: "wait", L2: "fuirich"},
	}
}
