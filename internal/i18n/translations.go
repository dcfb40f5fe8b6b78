package i18n

// BaseLocale is used when a requested locale has no table, and for keys a
// table does not define.
const BaseLocale = "en"

var translations = map[string]map[string]string{
	"en": {
		"headerTitle":              "Tasks",
		"headerSubtitle":           "{{count}} tasks found",
		"loading":                  "Loading...",
		"filterAll":                "All",
		"filterOpen":               "Open",
		"filterCompleted":          "Completed",
		"emptyList":                "No tasks found for this filter.",
		"textInputPlaceholder":     "Add something to do...",
		"uncategorized":            "Uncategorized",
		"deletedCategory":          "Deleted Category",
		"defaultCategory":          "General",
		"manageModalTitle":         "Settings",
		"categoryModalTitle":       "Manage Categories",
		"manageModalAddNew":        "Add New Category",
		"manageModalCategoryName":  "Category Name",
		"manageModalAddButton":     "Add",
		"manageModalCurrent":       "Current Categories",
		"manageModalEmpty":         "No custom categories yet.",
		"changeCategoryModalTitle": "Change Category",
		"modalClose":               "Close",
		"alertErrorTitle":          "Error",
		"alertTaskTitleEmpty":      "Task cannot be empty.",
		"alertCategoryNameEmpty":   "Category name cannot be empty.",
		"alertDeleteCategoryTitle": "Delete Category",
		"alertDeleteCategoryBody":  "Are you sure you want to delete this category? Tasks in this category will be marked as 'Uncategorized'.",
		"alertCancel":              "Cancel",
		"alertDelete":              "Delete",
		"themeTitle":               "Theme",
		"themeLight":               "Light",
		"themeDark":                "Dark",
		"themeSystem":              "System",
		"hintAdd":                  "add",
		"hintDone":                 "done",
		"hintDelete":               "del",
		"hintCategory":             "category",
		"hintFilter":               "filter",
		"hintQuit":                 "quit",
		"hintHelp":                 "help",
		"hintNew":                  "new",
		"hintBack":                 "back",
		"hintSelect":               "select",
		"hintSection":              "section",
		"hintColor":                "color",
		"shortcutsTitle":           "Keyboard Shortcuts",
		"shortcutsDismiss":         "Press any key to close",
		"shortcutAddTask":          "add task",
		"shortcutToggle":           "toggle done",
		"shortcutDeleteTask":       "delete task",
		"shortcutChangeCategory":   "change category",
		"shortcutPrevFilter":       "previous filter",
		"shortcutNextFilter":       "next filter",
		"languageTitle":            "Language",
		"languageSystem":           "System",
		"languageEN":               "English",
		"languageTR":               "Türkçe",
		"languageDE":               "Deutsch",
		"languageFR":               "Français",
		"languageES":               "Español",
		"languageIT":               "Italiano",
		"languagePL":               "Polski",
		"languageRU":               "Русский",
		"languagePT":               "Português",
		"languageAR":               "العربية",
		"languageEL":               "Ελληνικά",
		"languageJA":               "日本語",
		"languageKO":               "한국어",
		"languageZH":               "简体中文",
		"languageHI":               "हिन्दी",
		"languageNL":               "Nederlands",
		"languageSV":               "Svenska",
		"languageNO":               "Norsk",
		"languageDA":               "Dansk",
		"languageFI":               "Suomi",
		"languageCS":               "Čeština",
	},
	"tr": {
		"headerTitle":              "Görevler",
		"headerSubtitle":           "{{count}} adet görev bulundu",
		"loading":                  "Yükleniyor...",
		"filterAll":                "Tümü",
		"filterOpen":               "Açık",
		"filterCompleted":          "Tamamlanan",
		"emptyList":                "Bu filtreye uygun görev yok.",
		"textInputPlaceholder":     "Yapılacak bir şey ekle...",
		"uncategorized":            "Kategorisiz",
		"deletedCategory":          "Silinmiş Kategori",
		"defaultCategory":          "Genel",
		"manageModalTitle":         "Ayarlar",
		"categoryModalTitle":       "Kategorileri Yönet",
		"manageModalAddNew":        "Yeni Kategori Ekle",
		"manageModalCategoryName":  "Kategori Adı",
		"manageModalAddButton":     "Ekle",
		"manageModalCurrent":       "Mevcut Kategoriler",
		"manageModalEmpty":         "Henüz özel kategori yok.",
		"changeCategoryModalTitle": "Kategori Değiştir",
		"modalClose":               "Kapat",
		"alertErrorTitle":          "Hata",
		"alertTaskTitleEmpty":      "Görev boş olamaz.",
		"alertCategoryNameEmpty":   "Kategori adı boş olamaz.",
		"alertDeleteCategoryTitle": "Kategoriyi Sil",
		"alertDeleteCategoryBody":  "Bu kategoriyi silmek istediğinizden emin misiniz? Bu kategoriye ait görevler 'Kategorisiz' olarak işaretlenecektir.",
		"alertCancel":              "İptal",
		"alertDelete":              "Sil",
		"themeTitle":               "Tema",
		"themeLight":               "Açık",
		"themeDark":                "Karanlık",
		"themeSystem":              "Sistem",
		"hintAdd":                  "ekle",
		"hintDone":                 "bitti",
		"hintDelete":               "sil",
		"hintCategory":             "kategori",
		"hintFilter":               "filtre",
		"hintQuit":                 "çık",
		"hintHelp":                 "yardım",
		"hintNew":                  "yeni",
		"hintBack":                 "geri",
		"hintSelect":               "seç",
		"hintSection":              "bölüm",
		"hintColor":                "renk",
		"shortcutsTitle":           "Klavye Kısayolları",
		"shortcutsDismiss":         "Kapatmak için bir tuşa basın",
		"shortcutAddTask":          "görev ekle",
		"shortcutToggle":           "tamamlandı yap/geri al",
		"shortcutDeleteTask":       "görevi sil",
		"shortcutChangeCategory":   "kategori değiştir",
		"shortcutPrevFilter":       "önceki filtre",
		"shortcutNextFilter":       "sonraki filtre",
		"languageTitle":            "Dil",
		"languageSystem":           "Sistem",
	},
	"fr": {
		"manageModalTitle":   "Paramètres",
		"categoryModalTitle": "Gérer les catégories",
	},
	"de": {
		"manageModalTitle":   "Einstellungen",
		"categoryModalTitle": "Kategorien verwalten",
	},
}
