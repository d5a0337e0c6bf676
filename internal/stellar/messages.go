package stellar

import "github.com/stellar-ptw/stellar/internal/lang"

var (
	insightMissingPPE = lang.Text{
		RU: "Для данного вида работ рекомендуются СИЗ, отсутствующие в наряде: %s",
		TR: "Bu iş için izinde olmayan KKD önerilir: %s",
		EN: "PPE recommended for this work but missing from the permit: %s",
	}
	insightMissingMeasures = lang.Text{
		RU: "Не указано рекомендуемых мер безопасности: %d",
		TR: "Belirtilmemiş önerilen güvenlik önlemi sayısı: %d",
		EN: "Recommended safety measures not listed: %d",
	}
	insightHighRiskInvalid = lang.Text{
		RU: "Работы повышенной опасности: устраните ошибки в наряде до утверждения",
		TR: "Yüksek riskli çalışma: onaydan önce izindeki hataları düzeltin",
		EN: "High-risk work: fix the permit errors before approval",
	}
	insightTeamIncomplete = lang.Text{
		RU: "Состав бригады требует внимания",
		TR: "Ekip yapısı dikkat gerektiriyor",
		EN: "The team composition needs attention",
	}
)
