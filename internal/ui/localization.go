package ui

import (
	"fyne.io/fyne/v2/lang"

	"github.com/ytget/yt-clipper/internal/clip"
	"github.com/ytget/yt-clipper/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyDownload           = "download"
	KeyCancel             = "cancel"
	KeyOpen               = "open"
	KeyShowInFolder       = "show_in_folder"
	KeyClipAnother        = "clip_another"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyDownloadDirectory  = "download_directory"
	KeyQualityPreset      = "quality_preset"
	KeyEncoderPreset      = "encoder_preset"
	KeyKeepFullVideo      = "keep_full_video"
	KeyFFmpegPath         = "ffmpeg_path"
	KeyAutoReveal         = "auto_reveal"
	KeySave               = "save"
	KeyBrowse             = "browse"
	KeyEnterURL           = "enter_url"
	KeyYouTubeHint        = "youtube_hint"
	KeyNotYouTube         = "not_youtube"
	KeyStartTime          = "start_time"
	KeyEndTime            = "end_time"
	KeyStatusLog          = "status_log"
	KeySettingsSaved      = "settings_saved"
	KeyClipCompleted      = "clip_completed"
	KeyClipSaved          = "clip_saved"
	KeyCancelling         = "cancelling"
	KeyErrorOpeningFile   = "error_opening_file"
	KeyDownloadSettings   = "download_settings"
	KeyEncodingSettings   = "encoding_settings"
	KeyInterfaceSettings  = "interface_settings"
	KeyStatusReady        = "status_ready"
	KeyStatusValidating   = "status_validating"
	KeyStatusDownloading  = "status_downloading"
	KeyStatusTrimming     = "status_trimming"
	KeyStatusCancelled    = "status_cancelled"
	KeyErrInvalidInput    = "err_invalid_input"
	KeyErrDownloadFailed  = "err_download_failed"
	KeyErrTrimFailed      = "err_trim_failed"
	KeyErrBusy            = "err_busy"
	KeyErrUnexpected      = "err_unexpected"
	KeySystemDefaultLabel = "system_default"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" picks the OS locale when a
// translation for it exists.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = lang.SystemLocale().LanguageString()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// StatusText returns the label for a task stage
func (l *Localization) StatusText(status model.TaskStatus) string {
	switch status {
	case model.TaskStatusValidating:
		return l.GetText(KeyStatusValidating)
	case model.TaskStatusDownloading:
		return l.GetText(KeyStatusDownloading)
	case model.TaskStatusTrimming:
		return l.GetText(KeyStatusTrimming)
	case model.TaskStatusCancelled:
		return l.GetText(KeyStatusCancelled)
	case model.TaskStatusCompleted:
		return l.GetText(KeyClipCompleted)
	default:
		return l.GetText(KeyStatusReady)
	}
}

// ErrorText returns the heading shown for a failed request
func (l *Localization) ErrorText(kind clip.ErrorKind) string {
	switch kind {
	case clip.InvalidInput:
		return l.GetText(KeyErrInvalidInput)
	case clip.DownloadFailed:
		return l.GetText(KeyErrDownloadFailed)
	case clip.TrimFailed:
		return l.GetText(KeyErrTrimFailed)
	case clip.Busy:
		return l.GetText(KeyErrBusy)
	case clip.Cancelled:
		return l.GetText(KeyStatusCancelled)
	default:
		return l.GetText(KeyErrUnexpected)
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "YouTube Clipper",
		KeyDownload:           "Download",
		KeyCancel:             "Cancel",
		KeyOpen:               "Open",
		KeyShowInFolder:       "Show in folder",
		KeyClipAnother:        "Clip another",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyDownloadDirectory:  "Save clips to",
		KeyQualityPreset:      "Download quality",
		KeyEncoderPreset:      "Encoder preset",
		KeyKeepFullVideo:      "Keep full video after trimming",
		KeyFFmpegPath:         "ffmpeg executable (empty = search PATH)",
		KeyAutoReveal:         "Show clip in folder when done",
		KeySave:               "Save",
		KeyBrowse:             "Browse",
		KeyEnterURL:           "https://www.youtube.com/watch?v=...",
		KeyYouTubeHint:        "Paste a YouTube video link",
		KeyNotYouTube:         "This does not look like a YouTube link",
		KeyStartTime:          "Start (HH:MM:SS)",
		KeyEndTime:            "End (HH:MM:SS)",
		KeyStatusLog:          "Status",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyClipCompleted:      "Clip ready",
		KeyClipSaved:          "Clip saved to",
		KeyCancelling:         "Cancelling...",
		KeyErrorOpeningFile:   "Error opening file",
		KeyDownloadSettings:   "Download",
		KeyEncodingSettings:   "Encoding",
		KeyInterfaceSettings:  "Interface",
		KeyStatusReady:        "Ready",
		KeyStatusValidating:   "Checking input",
		KeyStatusDownloading:  "Downloading video",
		KeyStatusTrimming:     "Trimming clip",
		KeyStatusCancelled:    "Cancelled",
		KeyErrInvalidInput:    "Invalid input",
		KeyErrDownloadFailed:  "Download failed",
		KeyErrTrimFailed:      "Trimming failed",
		KeyErrBusy:            "A clip is already being made",
		KeyErrUnexpected:      "Unexpected error",
		KeySystemDefaultLabel: "System default",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "YouTube Клиппер",
		KeyDownload:           "Скачать",
		KeyCancel:             "Отмена",
		KeyOpen:               "Открыть",
		KeyShowInFolder:       "Показать в папке",
		KeyClipAnother:        "Ещё клип",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyDownloadDirectory:  "Папка для клипов",
		KeyQualityPreset:      "Качество загрузки",
		KeyEncoderPreset:      "Пресет кодирования",
		KeyKeepFullVideo:      "Сохранять полное видео после обрезки",
		KeyFFmpegPath:         "Путь к ffmpeg (пусто = искать в PATH)",
		KeyAutoReveal:         "Показать клип в папке после завершения",
		KeySave:               "Сохранить",
		KeyBrowse:             "Обзор",
		KeyEnterURL:           "https://www.youtube.com/watch?v=...",
		KeyYouTubeHint:        "Вставьте ссылку на видео YouTube",
		KeyNotYouTube:         "Это не похоже на ссылку YouTube",
		KeyStartTime:          "Начало (ЧЧ:ММ:СС)",
		KeyEndTime:            "Конец (ЧЧ:ММ:СС)",
		KeyStatusLog:          "Статус",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyClipCompleted:      "Клип готов",
		KeyClipSaved:          "Клип сохранён в",
		KeyCancelling:         "Отмена...",
		KeyErrorOpeningFile:   "Ошибка открытия файла",
		KeyDownloadSettings:   "Загрузка",
		KeyEncodingSettings:   "Кодирование",
		KeyInterfaceSettings:  "Интерфейс",
		KeyStatusReady:        "Готово к работе",
		KeyStatusValidating:   "Проверка данных",
		KeyStatusDownloading:  "Загрузка видео",
		KeyStatusTrimming:     "Обрезка клипа",
		KeyStatusCancelled:    "Отменено",
		KeyErrInvalidInput:    "Неверные данные",
		KeyErrDownloadFailed:  "Ошибка загрузки",
		KeyErrTrimFailed:      "Ошибка обрезки",
		KeyErrBusy:            "Клип уже создаётся",
		KeyErrUnexpected:      "Непредвиденная ошибка",
		KeySystemDefaultLabel: "Системный",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "YouTube Clipper",
		KeyDownload:           "Baixar",
		KeyCancel:             "Cancelar",
		KeyOpen:               "Abrir",
		KeyShowInFolder:       "Mostrar na pasta",
		KeyClipAnother:        "Outro clipe",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyDownloadDirectory:  "Salvar clipes em",
		KeyQualityPreset:      "Qualidade do download",
		KeyEncoderPreset:      "Predefinição do codificador",
		KeyKeepFullVideo:      "Manter vídeo completo após cortar",
		KeyFFmpegPath:         "Executável do ffmpeg (vazio = procurar no PATH)",
		KeyAutoReveal:         "Mostrar clipe na pasta ao concluir",
		KeySave:               "Salvar",
		KeyBrowse:             "Navegar",
		KeyEnterURL:           "https://www.youtube.com/watch?v=...",
		KeyYouTubeHint:        "Cole um link de vídeo do YouTube",
		KeyNotYouTube:         "Isto não parece um link do YouTube",
		KeyStartTime:          "Início (HH:MM:SS)",
		KeyEndTime:            "Fim (HH:MM:SS)",
		KeyStatusLog:          "Status",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyClipCompleted:      "Clipe pronto",
		KeyClipSaved:          "Clipe salvo em",
		KeyCancelling:         "Cancelando...",
		KeyErrorOpeningFile:   "Erro ao abrir arquivo",
		KeyDownloadSettings:   "Download",
		KeyEncodingSettings:   "Codificação",
		KeyInterfaceSettings:  "Interface",
		KeyStatusReady:        "Pronto",
		KeyStatusValidating:   "Verificando dados",
		KeyStatusDownloading:  "Baixando vídeo",
		KeyStatusTrimming:     "Cortando clipe",
		KeyStatusCancelled:    "Cancelado",
		KeyErrInvalidInput:    "Entrada inválida",
		KeyErrDownloadFailed:  "Falha no download",
		KeyErrTrimFailed:      "Falha ao cortar",
		KeyErrBusy:            "Um clipe já está sendo criado",
		KeyErrUnexpected:      "Erro inesperado",
		KeySystemDefaultLabel: "Padrão do sistema",
	}
}
