package lang

import (
	"os"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sjzsdu/dbproj/share"
	"golang.org/x/text/language"
)

var (
	once      sync.Once
	localizer *i18n.Localizer
)

// currentLang 返回当前语言，优先使用环境变量配置
func currentLang() string {
	if lang := os.Getenv(share.PREFIX + "LANG"); lang != "" {
		return lang
	}
	if lang := os.Getenv("LANG"); lang != "" {
		return lang
	}
	return "en"
}

func setup() {
	bundle := i18n.NewBundle(language.English)
	for id, other := range zhCN {
		_ = bundle.AddMessages(language.SimplifiedChinese, &i18n.Message{
			ID:    id,
			Other: other,
		})
	}
	localizer = i18n.NewLocalizer(bundle, currentLang())
}

// T 翻译指定的消息，没有对应翻译时原样返回
func T(msg string) string {
	once.Do(setup)
	out, err := localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID:    msg,
			Other: msg,
		},
	})
	if err != nil {
		return msg
	}
	return out
}
