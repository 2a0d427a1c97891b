package extracting

import (
	"time"

	"github.com/vfg2006/ad-extractor-api/internal/domain"
)

// lifetimeLookbackMonths limita o preset lifetime, já que a API do Meta não
// aceita janelas arbitrariamente longas com time_increment diário.
const lifetimeLookbackMonths = 36

// ResolveDateRange converte o período simbólico em datas concretas, sempre
// relativo a now. A mesma configuração resolvida no mesmo instante produz
// sempre o mesmo resultado.
//
// IncludeToday controla se o dia corrente entra nas janelas móveis
// (last_N_days, this_week, this_month...). Os períodos fechados (yesterday,
// last_week, last_month...) não são afetados.
func ResolveDateRange(cfg domain.DateRangeConfig, now time.Time) (domain.ResolvedDateRange, error) {
	today := truncateToDay(now)

	rollingEnd := today
	if !cfg.IncludeToday {
		rollingEnd = today.AddDate(0, 0, -1)
	}

	switch cfg.Preset {
	case domain.PresetToday:
		return domain.ResolvedDateRange{StartDate: today, EndDate: today}, nil

	case domain.PresetYesterday:
		yesterday := today.AddDate(0, 0, -1)
		return domain.ResolvedDateRange{StartDate: yesterday, EndDate: yesterday}, nil

	case domain.PresetLast7Days:
		return lastNDays(rollingEnd, 7), nil

	case domain.PresetLast14Days:
		return lastNDays(rollingEnd, 14), nil

	case domain.PresetLast30Days:
		return lastNDays(rollingEnd, 30), nil

	case domain.PresetLast90Days:
		return lastNDays(rollingEnd, 90), nil

	case domain.PresetThisWeek:
		return clampedRange(startOfWeek(today), rollingEnd), nil

	case domain.PresetLastWeek:
		// Semana anterior completa, de domingo a sábado
		start := startOfWeek(today).AddDate(0, 0, -7)
		return domain.ResolvedDateRange{StartDate: start, EndDate: start.AddDate(0, 0, 6)}, nil

	case domain.PresetThisMonth:
		return clampedRange(startOfMonth(today), rollingEnd), nil

	case domain.PresetLastMonth:
		start := startOfMonth(today).AddDate(0, -1, 0)
		return domain.ResolvedDateRange{StartDate: start, EndDate: start.AddDate(0, 1, -1)}, nil

	case domain.PresetThisQuarter:
		return clampedRange(startOfQuarter(today), rollingEnd), nil

	case domain.PresetLastQuarter:
		start := startOfQuarter(today).AddDate(0, -3, 0)
		return domain.ResolvedDateRange{StartDate: start, EndDate: start.AddDate(0, 3, -1)}, nil

	case domain.PresetThisYear:
		return clampedRange(time.Date(today.Year(), 1, 1, 0, 0, 0, 0, today.Location()), rollingEnd), nil

	case domain.PresetLastYear:
		start := time.Date(today.Year()-1, 1, 1, 0, 0, 0, 0, today.Location())
		end := time.Date(today.Year()-1, 12, 31, 0, 0, 0, 0, today.Location())
		return domain.ResolvedDateRange{StartDate: start, EndDate: end}, nil

	case domain.PresetLifetime:
		return clampedRange(today.AddDate(0, -lifetimeLookbackMonths, 0), rollingEnd), nil

	case domain.PresetCustom:
		return resolveCustom(cfg)

	default:
		return domain.ResolvedDateRange{}, domain.NewConfigurationError("período desconhecido: %q", cfg.Preset)
	}
}

func resolveCustom(cfg domain.DateRangeConfig) (domain.ResolvedDateRange, error) {
	if cfg.StartDate == nil || cfg.EndDate == nil {
		return domain.ResolvedDateRange{}, domain.NewConfigurationError("período custom exige data inicial e final")
	}

	start := truncateToDay(*cfg.StartDate)
	end := truncateToDay(*cfg.EndDate)

	if start.After(end) {
		return domain.ResolvedDateRange{}, domain.NewConfigurationError("data inicial posterior à data final")
	}

	return domain.ResolvedDateRange{StartDate: start, EndDate: end}, nil
}

func lastNDays(end time.Time, n int) domain.ResolvedDateRange {
	return domain.ResolvedDateRange{
		StartDate: end.AddDate(0, 0, -(n - 1)),
		EndDate:   end,
	}
}

// clampedRange garante start <= end quando a janela móvel encolhe o fim
// (ex.: this_week sem o dia de hoje, num domingo)
func clampedRange(start, end time.Time) domain.ResolvedDateRange {
	if end.Before(start) {
		end = start
	}
	return domain.ResolvedDateRange{StartDate: start, EndDate: end}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek retorna o domingo da semana do dia informado
func startOfWeek(day time.Time) time.Time {
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func startOfMonth(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
}

func startOfQuarter(day time.Time) time.Time {
	quarterMonth := time.Month(((int(day.Month())-1)/3)*3 + 1)
	return time.Date(day.Year(), quarterMonth, 1, 0, 0, 0, 0, day.Location())
}
