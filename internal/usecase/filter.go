package usecase

import (
	"strconv"
	"strings"

	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain"
)

// Filter возвращает подмножество записей, удовлетворяющих всем активным
// критериям (логическое AND по измерениям). Чистая детерминированная
// функция, state не мутируется.
//
// Семантика оплаты: если активны оба переключателя (paid и unpaid),
// запись проходит в любом случае - эквивалентно отключённому фильтру.
// Текстовый поиск идёт по title и address (без учёта регистра);
// цена-как-строка проверяется дополнительно для числовых запросов.
func Filter(records []domain.GeoRecord, state domain.FilterState) []domain.GeoRecord {
	result := make([]domain.GeoRecord, 0, len(records))
	search := strings.ToLower(strings.TrimSpace(state.SearchText))

	for i := range records {
		if matches(&records[i], state, search) {
			result = append(result, records[i])
		}
	}
	return result
}

func matches(r *domain.GeoRecord, state domain.FilterState, search string) bool {
	return matchesCategory(r, state.Categories) &&
		matchesStatus(r, state.Statuses) &&
		matchesPayment(r, state.PaidOnly, state.UnpaidOnly) &&
		matchesText(r, search) &&
		matchesArea(r, state.AreaBuckets) &&
		matchesPrice(r, state.PriceRange)
}

func matchesCategory(r *domain.GeoRecord, categories []string) bool {
	if len(categories) == 0 || domain.Contains(categories, domain.FilterAll) {
		return true
	}
	return domain.Contains(categories, r.Category)
}

func matchesStatus(r *domain.GeoRecord, statuses []string) bool {
	if len(statuses) == 0 || domain.Contains(statuses, domain.FilterAll) {
		return true
	}
	if domain.Contains(statuses, domain.FilterNone) && r.Status == nil {
		return true
	}
	return r.Status != nil && domain.Contains(statuses, *r.Status)
}

func matchesPayment(r *domain.GeoRecord, paidOnly, unpaidOnly bool) bool {
	if paidOnly == unpaidOnly {
		// оба выключены или оба включены - оплата не фильтруется
		return true
	}
	if paidOnly {
		return r.IsPaid
	}
	return !r.IsPaid
}

func matchesText(r *domain.GeoRecord, search string) bool {
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Title), search) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Address), search) {
		return true
	}
	return strings.Contains(strconv.FormatFloat(r.Price, 'f', -1, 64), search)
}

func matchesArea(r *domain.GeoRecord, buckets []string) bool {
	if len(buckets) == 0 {
		return true
	}
	// запись без площади не участвует в сопоставлении бакетов
	if r.Area == nil {
		return false
	}
	for _, name := range buckets {
		rule, ok := domain.AreaBucketRules[name]
		if !ok {
			continue
		}
		if rule.Matches(*r.Area) {
			return true
		}
	}
	return false
}

func matchesPrice(r *domain.GeoRecord, pr *domain.PriceRange) bool {
	if pr == nil {
		return true
	}
	return r.Price >= pr.Min && r.Price <= pr.Max
}
