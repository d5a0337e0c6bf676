package risk

import "github.com/stellar-ptw/stellar/internal/lang"

// Pattern IDs of the built-in table.
const (
	PatternHeightWork    = "height_work"
	PatternElectrical    = "electrical"
	PatternHotWork       = "hot_work"
	PatternConfinedSpace = "confined_space"
	PatternExcavation    = "excavation"
	PatternChemical      = "chemical"
	PatternLifting       = "lifting"
	PatternGas           = "gas"
	PatternPressure      = "pressure"
	PatternMechanical    = "mechanical"
	PatternDemolition    = "demolition"
	PatternRoutine       = "routine"
)

// DefaultPatterns returns a fresh copy of the built-in pattern table.
func DefaultPatterns() []Pattern {
	out := make([]Pattern, len(builtinPatterns))
	copy(out, builtinPatterns)
	return out
}

var builtinPatterns = []Pattern{
	{
		ID: PatternHeightWork,
		Keywords: []string{
			"высот", "подмост", "леса", "кровл", "крыш", "стремянк",
			"yüksek", "iskele", "çatı",
			"height", "scaffold", "roof", "ladder",
		},
		Level:     LevelHigh,
		BaseScore: 75,
		Hazards: lang.TextList{
			RU: []string{"Падение с высоты", "Падение предметов", "Обрушение лесов"},
			TR: []string{"Yüksekten düşme", "Malzeme düşmesi", "İskele çökmesi"},
			EN: []string{"Fall from height", "Falling objects", "Scaffold collapse"},
		},
		RequiredPPE: lang.TextList{
			RU: []string{"Страховочная привязь", "Защитная каска с подбородочным ремнём", "Нескользящая обувь"},
			TR: []string{"Paraşüt tipi emniyet kemeri", "Çene kayışlı baret", "Kaymaz ayakkabı"},
			EN: []string{"Full body harness", "Hard hat with chin strap", "Non-slip footwear"},
		},
		SafetyMeasures: lang.TextList{
			RU: []string{"Проверка лесов и подмостей перед началом работ", "Ограждение зоны под местом работ", "План эвакуации и спасения с высоты"},
			TR: []string{"Çalışma öncesi iskele kontrolü", "Çalışma alanının altının çevrilmesi", "Yüksekte kurtarma planı"},
			EN: []string{"Inspect scaffolding before work", "Barricade the area below", "Rescue-at-height plan"},
		},
	},
	{
		ID: PatternElectrical,
		Keywords: []string{
			"электр", "напряжен", "кабел", "трансформатор",
			"elektrik", "gerilim", "kablo", "trafo",
			"electric", "voltage", "cable", "transformer", "busbar",
		},
		Level:     LevelHigh,
		BaseScore: 80,
		Hazards: lang.TextList{
			RU: []string{"Поражение электрическим током", "Электрическая дуга", "Возгорание электрооборудования"},
			TR: []string{"Elektrik çarpması", "Elektrik arkı", "Elektrikli ekipman yangını"},
			EN: []string{"Electric shock", "Arc flash", "Electrical fire"},
		},
		RequiredPPE: lang.TextList{
			RU: []string{"Диэлектрические перчатки", "Диэлектрические боты", "Защитный щиток лица"},
			TR: []string{"Yalıtkan eldiven", "Yalıtkan bot", "Yüz siperi"},
			EN: []string{"Insulated gloves", "Dielectric boots", "Arc-rated face shield"},
		},
		SafetyMeasures: lang.TextList{
			RU: []string{"Снятие напряжения и блокировка (LOTO)", "Проверка отсутствия напряжения", "Установка переносного заземления"},
			TR: []string{"Enerjinin kesilmesi ve kilitleme (LOTO)", "Gerilim yokluğunun kontrolü", "Geçici topraklama yapılması"},
			EN: []string{"De-energize and lock out (LOTO)", "Verify absence of voltage", "Apply temporary grounding"},
		},
	},
	{
		ID: PatternHotWork,
		Keywords: []string{
			"свар", "огнев", "газорез", "резак", "пайк", "болгарк",
			"kaynak", "alevli", "taşlama",
			"weld", "hot work", "torch", "grinding", "brazing",
		},
		Level:     LevelHigh,
		BaseScore: 85,
		Hazards: lang.TextList{
			RU: []string{"Пожар", "Ожоги", "Отравление сварочными аэрозолями", "Поражение глаз излучением"},
			TR: []string{"Yangın", "Yanıklar", "Kaynak dumanı zehirlenmesi", "Işınımdan göz hasarı"},
			EN: []string{"Fire", "Burns", "Welding fume inhalation", "Eye injury from radiation"},
		},
		RequiredPPE: lang.TextList{
			RU: []string{"Сварочная маска", "Огнестойкий костюм", "Краги сварщика", "Респиратор"},
			TR: []string{"Kaynak maskesi", "Aleve dayanıklı iş elbisesi", "Kaynakçı eldiveni", "Solunum maskesi"},
			EN: []string{"Welding helmet", "Flame-resistant clothing", "Welding gauntlets", "Respirator"},
		},
		SafetyMeasures: lang.TextList{
			RU: []string{"Удаление горючих материалов в радиусе 10 м", "Первичные средства пожаротушения на месте работ", "Пожарный наблюдатель во время работ и 30 минут после"},
			TR: []string{"10 m yarıçaptaki yanıcı malzemelerin kaldırılması", "Çalışma yerinde yangın söndürücü", "Çalışma süresince ve sonrasında 30 dakika yangın gözcüsü"},
			EN: []string{"Remove combustibles within 10 m", "Fire extinguisher at the work site", "Fire watch during work and 30 minutes after"},
		},
	},
	{
		ID: PatternConfinedSpace,
		Keywords: []string{
			"замкнут", "колодц", "колодец", "резервуар", "емкост", "ёмкост", "цистерн", "тоннел", "туннел",
			"kapalı alan", "tank", "tünel", "rögar",
			"confined", "tunnel", "vessel", "manhole",
		},
		Level:     LevelCritical,
		BaseScore: 90,
		Hazards: lang.TextList{
			RU: []string{"Недостаток кислорода", "Токсичные газы", "Затруднённая эвакуация", "Взрывоопасная среда"},
			TR: []string{"Oksijen yetersizliği", "Zehirli gazlar", "Zor tahliye", "Patlayıcı ortam"},
			EN: []string{"Oxygen deficiency", "Toxic gases", "Difficult evacuation", "Explosive atmosphere"},
		},
		RequiredPPE: lang.TextList{
			RU: []string{"Газоанализатор", "Изолирующий противогаз", "Страховочная привязь со спасательным тросом"},
			TR: []string{"Gaz dedektörü", "Ortamdan bağımsız solunum cihazı", "Kurtarma halatlı emniyet kemeri"},
			EN: []string{"Gas detector", "Self-contained breathing apparatus", "Harness with rescue line"},
		},
		SafetyMeasures: lang.TextList{
			RU: []string{"Анализ воздушной среды перед входом и непрерывно", "Наблюдающий у входа", "Принудительная вентиляция", "План спасения из замкнутого пространства"},
			TR: []string{"Girişten önce ve sürekli gaz ölçümü", "Girişte gözcü", "Cebri havalandırma", "Kapalı alan kurtarma planı"},
			EN: []string{"Gas testing before entry and continuously", "Attendant at the entry", "Forced ventilation", "Confined space rescue plan"},
		},
	},
	{
		ID: PatternExcavation,
		Keywords: []string{
			"земляные", "котлован", "транше", "раскоп",
			"kazı", "hendek",
			"excavat", "trench", "digging",
		},
		Level:     LevelMedium,
		BaseScore: 60,
		Hazards: lang.TextList{
			RU: []string{"Обрушение грунта", "Повреждение подземных коммуникаций", "Падение в траншею"},
			TR: []string{"Göçük", "Yeraltı hatlarına zarar", "Hendeğe düşme"},
			EN: []string{"Cave-in", "Striking underground utilities", "Falling into the trench"},
		},
		RequiredPPE: lang.TextList{
			RU: []string{"Защитная каска", "Сигнальный жилет", "Защитная обувь"},
			TR: []string{"Baret", "Reflektörlü yelek", "İş ayakkabısı"},
			EN: []string{"Hard hat", "High-visibility vest", "Safety boots"},
		},
		SafetyMeasures: lang.TextList{
			RU: []string{"Согласование с владельцами подземных коммуникаций", "Крепление стенок траншеи", "Ограждение и освещение выемки"},
			TR: []string{"Yeraltı hatları için onay alınması", "Hendek duvarlarının desteklenmesi", "Kazının çevrilmesi ve aydınlatılması"},
			EN: []string{"Utility clearance before digging", "Shore or slope trench walls", "Barricade and light the excavation"},
		},
	},
	{
		ID: PatternChemical,
		Keywords: []string{
			"хими", "кислот", "щелоч", "растворител", "токсич", "реагент",
			"kimyasal", "asit", "çözücü",
			"chemical", "acid", "caustic", "solvent", "toxic",
		},
		Level:     LevelHigh,
		BaseScore: 75,
		Hazards: lang.TextList{
			RU: []string{"Химические ожоги", "Отравление парами", "Раздражение кожи и глаз"},
			TR: []string{"Kimyasal yanık", "Buhar zehirlenmesi", "Cilt ve göz tahrişi"},
			EN: []string{"Chemical burns", "Vapour poisoning", "Skin and eye irritation"},
		},
		RequiredPPE: lang.TextList{
			RU: []string{"Химстойкие перчатки", "Защитные очки", "Химзащитный костюм", "Респиратор с фильтром"},
			TR: []string{"Kimyasala dayanıklı eldiven", "Koruyucu gözlük", "Kimyasal koruyucu tulum", "Filtreli solunum maskesi"},
			EN: []string{"Chemical-resistant gloves", "Safety goggles", "Chemical protective suit", "Respirator with cartridge"},
		},
		SafetyMeasures: lang.TextList{
			RU: []string{"Изучение паспорта безопасности (SDS)", "Аварийный душ и фонтанчик для глаз", "Вентиляция рабочей зоны"},
			TR: []string{"Güvenlik bilgi formunun (SDS) incelenmesi", "Acil duş ve göz duşu", "Çalışma alanının havalandırılması"},
			EN: []string{"Review the safety data sheet (SDS)", "Emergency shower and eyewash", "Ventilate the work area"},
		},
	},
	{
		ID: PatternLifting,
		Keywords: []string{
			"кран", "подъем", "подъём", "строп", "такелаж",
			"vinç", "kaldırma", "sapan",
			"crane", "lifting", "hoist", "rigging",
		},
		Level:     LevelHigh,
		BaseScore: 70,
		Hazards: lang.TextList{
			RU: []string{"Падение груза", "Опрокидывание крана", "Защемление"},
			TR: []string{"Yük düşmesi", "Vincin devrilmesi", "Sıkışma"},
			EN: []string{"Dropped load", "Crane overturning", "Crushing"},
		},
		RequiredPPE: lang.TextList{
			RU: []string{"Защитная каска", "Сигнальный жилет", "Рабочие перчатки"},
			TR: []string{"Baret", "Reflektörlü yelek", "İş eldiveni"},
			EN: []string{"Hard hat", "High-visibility vest", "Work gloves"},
		},
		SafetyMeasures: lang.TextList{
			RU: []string{"План производства работ краном", "Проверка стропов и грузозахватных приспособлений", "Ограждение опасной зоны под грузом"},
			TR: []string{"Onaylı kaldırma planı", "Sapan ve kaldırma aparatlarının kontrolü", "Yük altı tehlike bölgesinin çevrilmesi"},
			EN: []string{"Approved lift plan", "Inspect slings and lifting accessories", "Exclusion zone under the load"},
		},
	},
	{
		ID: PatternGas,
		Keywords: []string{
			"газ", "метан", "пропан",
			"gaz", "metan", "propan",
			"gas", "methane", "propane",
		},
		Level:     LevelHigh,
		BaseScore: 85,
		Hazards: lang.TextList{
			RU: []string{"Взрыв", "Отравление газом", "Пожар"},
			TR: []string{"Patlama", "Gaz zehirlenmesi", "Yangın"},
			EN: []string{"Explosion", "Gas poisoning", "Fire"},
		},
		RequiredPPE: lang.TextList{
			RU: []string{"Газоанализатор", "Искробезопасный инструмент", "Антистатическая одежда"},
			TR: []string{"Gaz dedektörü", "Kıvılcım çıkarmayan el aletleri", "Antistatik giysi"},
			EN: []string{"Gas detector", "Non-sparking tools", "Antistatic clothing"},
		},
		SafetyMeasures: lang.TextList{
			RU: []string{"Отключение и продувка газопровода", "Контроль загазованности", "Исключение источников воспламенения"},
			TR: []string{"Gaz hattının kapatılması ve temizlenmesi", "Gaz konsantrasyonunun izlenmesi", "Tutuşturucu kaynakların ortadan kaldırılması"},
			EN: []string{"Isolate and purge the gas line", "Monitor gas concentration", "Eliminate ignition sources"},
		},
	},
	{
		ID: PatternPressure,
		Keywords: []string{
			"давлен", "трубопровод", "паропровод", "котел", "котёл",
			"basınç", "boru hattı", "buhar", "kazan",
			"pressure", "pipeline", "steam", "boiler",
		},
		Level:     LevelHigh,
		BaseScore: 70,
		Hazards: lang.TextList{
			RU: []string{"Разрыв оборудования под давлением", "Ожоги паром", "Выброс рабочей среды"},
			TR: []string{"Basınçlı ekipman patlaması", "Buhar yanığı", "Akışkan boşalması"},
			EN: []string{"Pressure equipment rupture", "Steam burns", "Release of process fluid"},
		},
		RequiredPPE: lang.TextList{
			RU: []string{"Защитные очки", "Термостойкие перчатки", "Защитная каска"},
			TR: []string{"Koruyucu gözlük", "Isıya dayanıklı eldiven", "Baret"},
			EN: []string{"Safety goggles", "Heat-resistant gloves", "Hard hat"},
		},
		SafetyMeasures: lang.TextList{
			RU: []string{"Сброс давления и дренирование", "Установка заглушек", "Блокировка запорной арматуры"},
			TR: []string{"Basıncın tahliyesi ve drenaj", "Kör flanş takılması", "Vanaların kilitlenmesi"},
			EN: []string{"Depressurize and drain", "Install blinds", "Lock the isolation valves"},
		},
	},
	{
		ID: PatternMechanical,
		Keywords: []string{
			"насос", "компрессор", "редуктор", "вращающ",
			"pompa", "kompresör", "redüktör",
			"pump", "compressor", "gearbox", "rotating",
		},
		Level:     LevelMedium,
		BaseScore: 50,
		Hazards: lang.TextList{
			RU: []string{"Захват вращающимися частями", "Травмы рук", "Неожиданный пуск оборудования"},
			TR: []string{"Dönen parçalara kapılma", "El yaralanmaları", "Ekipmanın beklenmedik çalışması"},
			EN: []string{"Entanglement in rotating parts", "Hand injuries", "Unexpected start-up"},
		},
		RequiredPPE: lang.TextList{
			RU: []string{"Рабочие перчатки", "Защитные очки", "Облегающая спецодежда"},
			TR: []string{"İş eldiveni", "Koruyucu gözlük", "Vücuda oturan iş elbisesi"},
			EN: []string{"Work gloves", "Safety glasses", "Close-fitting workwear"},
		},
		SafetyMeasures: lang.TextList{
			RU: []string{"Отключение привода и блокировка (LOTO)", "Проверка отсутствия движения", "Установка защитных кожухов после работ"},
			TR: []string{"Tahrikin kapatılması ve kilitlenmesi (LOTO)", "Hareketsizliğin doğrulanması", "İş sonrası koruyucuların takılması"},
			EN: []string{"Isolate and lock out the drive (LOTO)", "Verify zero motion", "Refit guards after work"},
		},
	},
	{
		ID: PatternDemolition,
		Keywords: []string{
			"демонтаж", "снос", "разборк",
			"söküm", "yıkım",
			"demolition", "dismantl",
		},
		Level:     LevelMedium,
		BaseScore: 55,
		Hazards: lang.TextList{
			RU: []string{"Обрушение конструкций", "Падение обломков", "Пыль"},
			TR: []string{"Yapı çökmesi", "Moloz düşmesi", "Toz"},
			EN: []string{"Structural collapse", "Falling debris", "Dust"},
		},
		RequiredPPE: lang.TextList{
			RU: []string{"Защитная каска", "Респиратор", "Защитные очки"},
			TR: []string{"Baret", "Toz maskesi", "Koruyucu gözlük"},
			EN: []string{"Hard hat", "Dust mask", "Safety glasses"},
		},
		SafetyMeasures: lang.TextList{
			RU: []string{"Оценка устойчивости конструкций", "Ограждение зоны демонтажа", "Пылеподавление"},
			TR: []string{"Yapı stabilitesinin değerlendirilmesi", "Söküm alanının çevrilmesi", "Toz bastırma"},
			EN: []string{"Assess structural stability", "Barricade the demolition zone", "Dust suppression"},
		},
	},
	{
		ID: PatternRoutine,
		Keywords: []string{
			"уборк", "осмотр", "покраск", "обход",
			"temizlik", "muayene", "boya",
			"cleaning", "inspection", "painting", "housekeeping",
		},
		Level:     LevelLow,
		BaseScore: 20,
		Hazards: lang.TextList{
			RU: []string{"Поскальзывание и падение", "Мелкие травмы"},
			TR: []string{"Kayma ve düşme", "Küçük yaralanmalar"},
			EN: []string{"Slips and trips", "Minor injuries"},
		},
		RequiredPPE: lang.TextList{
			RU: []string{"Защитная обувь", "Рабочие перчатки"},
			TR: []string{"İş ayakkabısı", "İş eldiveni"},
			EN: []string{"Safety shoes", "Work gloves"},
		},
		SafetyMeasures: lang.TextList{
			RU: []string{"Поддержание порядка на рабочем месте", "Инструктаж перед началом работ"},
			TR: []string{"Çalışma alanının düzenli tutulması", "İş öncesi bilgilendirme"},
			EN: []string{"Keep the work area tidy", "Pre-job briefing"},
		},
	},
}
