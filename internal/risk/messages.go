package risk

import "github.com/stellar-ptw/stellar/internal/lang"

// levelRecommendations are the fixed guidance lines emitted per level.
var levelRecommendations = map[Level]lang.TextList{
	LevelCritical: {
		RU: []string{
			"Работы допускаются только по наряду-допуску с утверждением руководителя",
			"Обязательно присутствие наблюдающего на протяжении всех работ",
			"Проведите целевой инструктаж и проверьте готовность аварийно-спасательных средств",
		},
		TR: []string{
			"Çalışma yalnızca yönetici onaylı iş izniyle yapılabilir",
			"Çalışma boyunca gözcü bulundurulması zorunludur",
			"Hedefli bilgilendirme yapın ve acil kurtarma ekipmanını kontrol edin",
		},
		EN: []string{
			"Work may proceed only under a permit approved by management",
			"A standby person must be present for the whole job",
			"Hold a targeted briefing and check emergency rescue equipment",
		},
	},
	LevelHigh: {
		RU: []string{
			"Требуется оформление наряда-допуска",
			"Проверьте квалификацию и допуски исполнителей",
			"Обеспечьте исправные СИЗ до начала работ",
		},
		TR: []string{
			"İş izni düzenlenmesi gereklidir",
			"Çalışanların yeterlilik ve yetki belgelerini kontrol edin",
			"İş başlamadan önce KKD'lerin uygunluğunu sağlayın",
		},
		EN: []string{
			"A work permit is required",
			"Verify worker qualifications and authorizations",
			"Ensure PPE is in good condition before starting",
		},
	},
	LevelMedium: {
		RU: []string{
			"Проведите инструктаж по охране труда перед началом работ",
			"Контролируйте соблюдение мер безопасности в ходе работ",
		},
		TR: []string{
			"İş öncesi iş güvenliği bilgilendirmesi yapın",
			"Çalışma süresince güvenlik önlemlerini denetleyin",
		},
		EN: []string{
			"Give a safety briefing before work starts",
			"Monitor safety measures during the work",
		},
	},
	LevelLow: {
		RU: []string{"Соблюдайте стандартные правила охраны труда"},
		TR: []string{"Standart iş güvenliği kurallarına uyun"},
		EN: []string{"Follow standard occupational safety rules"},
	},
}

var multiHazardRecommendation = lang.Text{
	RU: "Выявлено несколько опасностей: рассмотрите выполнение работ поэтапно",
	TR: "Birden fazla tehlike belirlendi: çalışmayı aşamalara bölmeyi düşünün",
	EN: "Multiple hazards identified: consider staging the work",
}

// defaultProfile is reported when no pattern matched. Absence of signal is
// medium risk with low confidence, not zero risk.
var defaultProfile = struct {
	hazards, ppe, measures, recommendations lang.TextList
}{
	hazards: lang.TextList{
		RU: []string{"Опасности не определены: недостаточно данных"},
		TR: []string{"Tehlikeler belirlenemedi: yetersiz bilgi"},
		EN: []string{"Hazards not identified: insufficient information"},
	},
	ppe: lang.TextList{
		RU: []string{"Защитная каска", "Защитная обувь", "Рабочие перчатки"},
		TR: []string{"Baret", "İş ayakkabısı", "İş eldiveni"},
		EN: []string{"Hard hat", "Safety shoes", "Work gloves"},
	},
	measures: lang.TextList{
		RU: []string{"Проведите оценку рисков перед началом работ"},
		TR: []string{"İş başlamadan önce risk değerlendirmesi yapın"},
		EN: []string{"Carry out a risk assessment before starting"},
	},
	recommendations: lang.TextList{
		RU: []string{"Уточните описание работ для более точной оценки риска", "Укажите тип работ и место проведения"},
		TR: []string{"Daha doğru risk değerlendirmesi için iş tanımını netleştirin", "İş türünü ve yerini belirtin"},
		EN: []string{"Clarify the work description for a more accurate risk assessment", "Specify the work type and location"},
	},
}
