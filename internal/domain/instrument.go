package domain

import "strings"

// Code identifies this instrument in the remote sheets.
const Code = "ETDAH_II"

const (
	// ItemCount is the number of scored items.
	ItemCount = 46
	// RequiredAnswers counts the scored items plus the initial observation.
	RequiredAnswers = ItemCount + 1

	MinPoints = 1
	MaxPoints = 6
)

// ObservationQuestion opens the form. It is answered but never scored.
const ObservationQuestion = "Assinale a observação que mais se adeque a esta criança:"

var observationChoices = [...]string{
	"É agitada.",
	"Apresenta dificuldades de atenção/concentração.",
	"Apresenta dificuldades para aprender.",
	"Apresenta todas as queixas anteriores.",
	"Não apresenta nenhuma das anteriores.",
}

var itemTexts = [ItemCount]string{
	"É organizado(a) em suas lições de classe.",
	"Dá respostas claras e coerentes ao professor.",
	"Segue o ritmo da classe.",
	"É atento(a) nas lições do caderno.",
	"É responsável com o seu material escolar.",
	"Sabe trabalhar independentemente.",
	"É meticuloso(a) nas atividades (é detalhista, faz o seu trabalho meticulosamente).",
	"Fica atento(a) durante as explicações do professor.",
	"Consegue prestar atenção à uma mesma coisa durante muito tempo.",
	"Perde e esquece objetos (livros, cadernos, lápis, borracha, etc.).",
	"Distraí-se facilmente por barulhos em sala de aula.",
	"Nunca termina o que começa.",
	"Passa de uma atividade incompleta para outra.",
	"Tem dificuldade para concentrar-se.",
	"Esquece muito rápido o que acabou de ser dito.",

	"Mexe-se e contorce-se na cadeira.",
	"Age sem pensar (é impulsivo).",
	"Parece estar sempre “a todo vapor” ou “ligado como um motor”.",
	"Mexe mãos e pés constantemente (é inquieto).",
	"Levanta-se frequentemente da cadeira.",
	"Atrapalha o professor com barulhos diferentes.",
	"Age imprudentemente.",
	"Tem sempre muita pressa.",
	"Muda muito de lugar e de postura.",
	"Fala pouco.",
	"É paciente (sabe aguardar sua vez).",
	"Parece ser um(a) estudante tranquilo(a) e sossegado(a).",

	"Não rende de acordo com o esperado em Português.",
	"Tem dificuldades para aprender problemas de matemática.",
	"Tem dificuldade para expressar verbalmente seus pensamentos.",
	"Seu raciocínio lógico é lento.",
	"Troca letras ao escrever.",
	"Sua caligrafia é desleixada.",
	"Gosta de fazer exercícios de matemática.",
	"Escreve sem erros.",
	"Lê perfeitamente.",
	"É rápido para fazer cálculos.",
	"Compreende textos corretamente.",
	"Domina soma, subtração, multiplicação e divisão.",
	"Fala com perfeição.",

	"Os colegas de classe o(a) evitam.",
	"Irrita outros alunos com suas palhaçadas.",
	"É briguento(a).",
	"Causa confusão em sala de aula.",
	"É bem aceito(a) pelos colegas de classe.",
	"Sabe respeitar os professores.",
}

// invertedItems are worded in the protective direction and are reflected
// (7 - v) before summing.
var invertedItems = map[int]struct{}{
	1: {}, 2: {}, 3: {}, 4: {}, 5: {}, 6: {}, 7: {}, 8: {}, 9: {},
	25: {}, 26: {}, 27: {},
	34: {}, 35: {}, 36: {}, 37: {}, 38: {}, 39: {}, 40: {},
	45: {}, 46: {},
}

var choices = [...]Choice{
	{Code: "DT", Text: "Discordo Totalmente", Points: 1},
	{Code: "D", Text: "Discordo", Points: 2},
	{Code: "DP", Text: "Discordo Parcialmente", Points: 3},
	{Code: "CP", Text: "Concordo Parcialmente", Points: 4},
	{Code: "C", Text: "Concordo", Points: 5},
	{Code: "CT", Text: "Concordo Totalmente", Points: 6},
}

var areas = [...]Area{
	{ID: AreaAttention, Title: "ATENÇÃO (A)", First: 1, Last: 15, Cutpoints: [4]int{24, 30, 41, 58}},
	{ID: AreaHyperactivity, Title: "HIPERATIVIDADE / IMPULSIVIDADE (H/I)", First: 16, Last: 27, Cutpoints: [4]int{18, 24, 29, 45}},
	{ID: AreaLearning, Title: "APRENDIZAGEM (A)", First: 28, Last: 40, Cutpoints: [4]int{23, 29, 39, 50}},
	{ID: AreaSocial, Title: "COMPORTAMENTO SOCIAL (C.S)", First: 41, Last: 46, Cutpoints: [4]int{6, 11, 12, 16}},
}

var descriptions = map[Classification]string{
	ClassInferior:      "Resultado muito abaixo do esperado para ser considerado um problema ou uma dificuldade.",
	ClassMediaInferior: "Resultado abaixo do esperado para ser considerado um problema ou uma dificuldade.",
	ClassMedia:         "Resultado compatível com a maior parte da população e não pode ser considerado um problema ou uma dificuldade.",
	ClassMediaSuperior: "Resultado compatível com prejuízos e dificuldades de nível moderado.",
	ClassSuperior:      "Resultado compatível com prejuízos importantes e sérias dificuldades, sendo considerado de nível grave.",
}

// Items returns the 46 items in id order.
func Items() []Item {
	out := make([]Item, 0, ItemCount)
	for i, text := range itemTexts {
		out = append(out, Item{ID: i + 1, Text: text, Polarity: PolarityOf(i + 1)})
	}
	return out
}

// ItemByID looks up an item. ok is false for ids outside 1..46.
func ItemByID(id int) (Item, bool) {
	if id < 1 || id > ItemCount {
		return Item{}, false
	}
	return Item{ID: id, Text: itemTexts[id-1], Polarity: PolarityOf(id)}, true
}

// PolarityOf returns the polarity of an item id.
func PolarityOf(id int) Polarity {
	if _, ok := invertedItems[id]; ok {
		return PolarityInverted
	}
	return PolarityNormal
}

// InvertedItemIDs returns the reverse-coded item ids in ascending order.
func InvertedItemIDs() []int {
	var ids []int
	for id := 1; id <= ItemCount; id++ {
		if PolarityOf(id) == PolarityInverted {
			ids = append(ids, id)
		}
	}
	return ids
}

// Choices returns the Likert scale from "Discordo Totalmente" to
// "Concordo Totalmente".
func Choices() []Choice {
	out := make([]Choice, len(choices))
	copy(out, choices[:])
	return out
}

// ChoiceByCode looks up a choice by its short code.
func ChoiceByCode(code string) (Choice, bool) {
	for _, c := range choices {
		if c.Code == code {
			return c, true
		}
	}
	return Choice{}, false
}

// ParseChoiceCode extracts the short code from a raw answer. Both "DT" and
// the form value "DT - Discordo Totalmente" yield "DT".
func ParseChoiceCode(raw string) string {
	code, _, _ := strings.Cut(raw, " - ")
	return strings.TrimSpace(code)
}

// ChoicePoints returns the base points of a raw answer, or 0 when the code
// is empty or unknown.
func ChoicePoints(raw string) int {
	c, ok := ChoiceByCode(ParseChoiceCode(raw))
	if !ok {
		return 0
	}
	return c.Points
}

// Areas returns the four areas in item order.
func Areas() []Area {
	out := make([]Area, len(areas))
	copy(out, areas[:])
	return out
}

// AreaByID looks up an area.
func AreaByID(id AreaID) (Area, bool) {
	for _, a := range areas {
		if a.ID == id {
			return a, true
		}
	}
	return Area{}, false
}

// AreaOf returns the area an item id belongs to.
func AreaOf(itemID int) (Area, bool) {
	for _, a := range areas {
		if a.Contains(itemID) {
			return a, true
		}
	}
	return Area{}, false
}

// Classify maps a sum onto the bands of the given area. Unknown areas
// classify as INFERIOR.
func Classify(id AreaID, score int) Classification {
	a, ok := AreaByID(id)
	if !ok {
		return ClassInferior
	}
	return a.Classify(score)
}

// DescriptionFor returns the interpretation text shared by every area.
func DescriptionFor(c Classification) string {
	return descriptions[c]
}

// ObservationChoices returns the options of the initial observation.
func ObservationChoices() []string {
	out := make([]string, len(observationChoices))
	copy(out, observationChoices[:])
	return out
}

// IsObservationChoice reports whether s is one of the observation options.
func IsObservationChoice(s string) bool {
	for _, c := range observationChoices {
		if c == s {
			return true
		}
	}
	return false
}
