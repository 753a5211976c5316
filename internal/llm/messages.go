package llm

import (
	"lesson-sage/internal/generator"

	"golang.org/x/text/language"
)

// kindEmptyPrompt is reported for prompts rejected before any backend call.
const kindEmptyPrompt = "empty_prompt"

// supported lists the message languages; the first one is the fallback.
var supported = []language.Tag{
	language.Kazakh,
	language.Russian,
	language.English,
}

var matcher = language.NewMatcher(supported)

// messages is indexed like supported.
var messages = []map[string]string{
	{
		kindEmptyPrompt:                         "Сұрау мәтінін енгізіңіз.",
		generator.KindMissingCredential.String(): "API кілті бапталмаған.",
		generator.KindTransport.String():         "Сервермен байланыс орнатылмады.",
		generator.KindHTTP.String():              "Сервер қате қайтарды.",
		generator.KindDecode.String():            "Жауапты оқу мүмкін болмады.",
		generator.KindEmptyResult.String():       "Жауап бос келді.",
		generator.KindUnknown.String():           "Жауап алу мүмкін болмады.",
	},
	{
		kindEmptyPrompt:                         "Введите текст запроса.",
		generator.KindMissingCredential.String(): "API-ключ не настроен.",
		generator.KindTransport.String():         "Не удалось связаться с сервером.",
		generator.KindHTTP.String():              "Сервер вернул ошибку.",
		generator.KindDecode.String():            "Не удалось прочитать ответ.",
		generator.KindEmptyResult.String():       "Получен пустой ответ.",
		generator.KindUnknown.String():           "Не удалось получить ответ.",
	},
	{
		kindEmptyPrompt:                         "Please enter a prompt.",
		generator.KindMissingCredential.String(): "The API key is not configured.",
		generator.KindTransport.String():         "Could not reach the generation service.",
		generator.KindHTTP.String():              "The generation service returned an error.",
		generator.KindDecode.String():            "Could not read the generated answer.",
		generator.KindEmptyResult.String():       "The generated answer was empty.",
		generator.KindUnknown.String():           "Could not get an answer.",
	},
}

// message returns the text for kind in the best language for an Accept-Language header.
func message(acceptLanguage, kind string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		tags = nil
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(messages) {
		idx = 0
	}
	if text, ok := messages[idx][kind]; ok {
		return text
	}
	return messages[idx][generator.KindUnknown.String()]
}
