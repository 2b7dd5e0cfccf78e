package usecase

import (
	"time"

	"github.com/adbonpastor/church-api/internal/entity"
)

// Faixas etárias do painel administrativo, na ordem de exibição
var AgeBucketLabels = []string{"18-25", "26-35", "36-50", "51-65", "65+"}

type AgeBucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// AgeDistribution classifica os membros nas cinco faixas fixas. A idade é
// ano atual menos ano de nascimento, sem olhar mês/dia (comportamento
// herdado do painel original). Membros sem data de nascimento ficam fora
// de todas as faixas.
func AgeDistribution(members []*entity.Member, now time.Time) []AgeBucket {
	counts := map[string]int{}

	for _, m := range members {
		age := m.Age(now)
		switch {
		case age < 0:
			// sem data de nascimento
		case age >= 18 && age <= 25:
			counts["18-25"]++
		case age >= 26 && age <= 35:
			counts["26-35"]++
		case age >= 36 && age <= 50:
			counts["36-50"]++
		case age >= 51 && age <= 65:
			counts["51-65"]++
		case age > 65:
			counts["65+"]++
		}
	}

	buckets := make([]AgeBucket, 0, len(AgeBucketLabels))
	for _, label := range AgeBucketLabels {
		buckets = append(buckets, AgeBucket{Name: label, Value: counts[label]})
	}
	return buckets
}
