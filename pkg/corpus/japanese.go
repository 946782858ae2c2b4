package corpus

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// JapaneseAnalyzer turns raw Japanese text into romanized corpus words, so
// a phonotactic model for Japanese can be rebuilt through the standard
// wordlist path.
type JapaneseAnalyzer struct {
	t *tokenizer.Tokenizer
}

// NewJapaneseAnalyzer loads the IPA dictionary and creates a tokenizer.
func NewJapaneseAnalyzer() (*JapaneseAnalyzer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &JapaneseAnalyzer{t: t}, nil
}

// readingFeature is the index of the katakana reading in the IPA feature
// list.
const readingFeature = 7

// Words tokenizes text and returns one romanized word per token that
// carries a katakana reading. Symbols, numbers and Latin fragments have no
// reading and are skipped.
func (a *JapaneseAnalyzer) Words(text string) []string {
	var words []string
	for _, tok := range a.t.Tokenize(text) {
		if tok.Class == tokenizer.DUMMY {
			continue
		}
		features := tok.Features()
		if len(features) <= readingFeature || features[readingFeature] == "*" {
			continue
		}
		if w := RomanizeKana(features[readingFeature]); w != "" {
			words = append(words, w)
		}
	}
	return words
}

// RomanizeKana transliterates katakana to lowercase romaji. The sokuon ッ
// doubles the following consonant (ch becomes tch), and the long-vowel mark
// ー repeats the preceding vowel. Runes without a mapping are dropped.
func RomanizeKana(kana string) string {
	runes := []rune(kana)
	var sb strings.Builder
	sokuon := false
	for i := 0; i < len(runes); i++ {
		if runes[i] == 'ッ' {
			sokuon = true
			continue
		}
		if runes[i] == 'ー' {
			if v := lastVowel(sb.String()); v != 0 {
				sb.WriteByte(v)
			}
			continue
		}

		syllable := ""
		if i+1 < len(runes) {
			if s, ok := kanaDigraphs[string(runes[i:i+2])]; ok {
				syllable = s
				i++
			}
		}
		if syllable == "" {
			s, ok := kanaMonographs[runes[i]]
			if !ok {
				continue
			}
			syllable = s
		}

		if sokuon {
			sokuon = false
			if strings.HasPrefix(syllable, "ch") {
				sb.WriteByte('t')
			} else {
				sb.WriteByte(syllable[0])
			}
		}
		sb.WriteString(syllable)
	}
	return sb.String()
}

func lastVowel(s string) byte {
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case 'a', 'e', 'i', 'o', 'u':
			return s[i]
		}
	}
	return 0
}

var kanaMonographs = map[rune]string{
	'ア': "a", 'イ': "i", 'ウ': "u", 'エ': "e", 'オ': "o",
	'カ': "ka", 'キ': "ki", 'ク': "ku", 'ケ': "ke", 'コ': "ko",
	'サ': "sa", 'シ': "shi", 'ス': "su", 'セ': "se", 'ソ': "so",
	'タ': "ta", 'チ': "chi", 'ツ': "tsu", 'テ': "te", 'ト': "to",
	'ナ': "na", 'ニ': "ni", 'ヌ': "nu", 'ネ': "ne", 'ノ': "no",
	'ハ': "ha", 'ヒ': "hi", 'フ': "fu", 'ヘ': "he", 'ホ': "ho",
	'マ': "ma", 'ミ': "mi", 'ム': "mu", 'メ': "me", 'モ': "mo",
	'ヤ': "ya", 'ユ': "yu", 'ヨ': "yo",
	'ラ': "ra", 'リ': "ri", 'ル': "ru", 'レ': "re", 'ロ': "ro",
	'ワ': "wa", 'ヲ': "o", 'ン': "n",
	'ガ': "ga", 'ギ': "gi", 'グ': "gu", 'ゲ': "ge", 'ゴ': "go",
	'ザ': "za", 'ジ': "ji", 'ズ': "zu", 'ゼ': "ze", 'ゾ': "zo",
	'ダ': "da", 'ヂ': "ji", 'ヅ': "zu", 'デ': "de", 'ド': "do",
	'バ': "ba", 'ビ': "bi", 'ブ': "bu", 'ベ': "be", 'ボ': "bo",
	'パ': "pa", 'ピ': "pi", 'プ': "pu", 'ペ': "pe", 'ポ': "po",
	'ヴ': "vu",
	'ァ': "a", 'ィ': "i", 'ゥ': "u", 'ェ': "e", 'ォ': "o",
}

var kanaDigraphs = map[string]string{
	"キャ": "kya", "キュ": "kyu", "キョ": "kyo",
	"シャ": "sha", "シュ": "shu", "ショ": "sho", "シェ": "she",
	"チャ": "cha", "チュ": "chu", "チョ": "cho", "チェ": "che",
	"ニャ": "nya", "ニュ": "nyu", "ニョ": "nyo",
	"ヒャ": "hya", "ヒュ": "hyu", "ヒョ": "hyo",
	"ミャ": "mya", "ミュ": "myu", "ミョ": "myo",
	"リャ": "rya", "リュ": "ryu", "リョ": "ryo",
	"ギャ": "gya", "ギュ": "gyu", "ギョ": "gyo",
	"ジャ": "ja", "ジュ": "ju", "ジョ": "jo", "ジェ": "je",
	"ビャ": "bya", "ビュ": "byu", "ビョ": "byo",
	"ピャ": "pya", "ピュ": "pyu", "ピョ": "pyo",
	"ファ": "fa", "フィ": "fi", "フェ": "fe", "フォ": "fo",
	"ティ": "ti", "ディ": "di", "デュ": "dyu",
	"ウィ": "wi", "ウェ": "we", "ウォ": "wo",
}
