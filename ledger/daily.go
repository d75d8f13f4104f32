package ledger

import "bourse/models"

// ResetDailyCounters zeroes every stock's bought/sold counters. Run once
// per day from the reset_counters command; the engine itself never
// resets them.
func (l *Ledger) ResetDailyCounters() error {
	result := l.db.Model(&models.Stock{}).
		Where("bought_today <> 0 OR sold_today <> 0").
		Updates(map[string]interface{}{
			"bought_today": 0,
			"sold_today":   0,
		})
	if result.Error != nil {
		return result.Error
	}

	l.logger.Infow("daily trade counters reset", "stocks", result.RowsAffected)
	return nil
}
