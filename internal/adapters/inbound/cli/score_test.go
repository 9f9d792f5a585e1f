package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreCommand_JSON(t *testing.T) {
	p := writeFile(t, t.TempDir(), "answers.yaml", completeAnswersYAML())

	out, err := run(t, "score", p, "--json")
	require.NoError(t, err)

	var res domain.ScoringResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 25*4+21*3, res.Total)
	assert.True(t, res.Complete())
}

func TestScoreCommand_Document(t *testing.T) {
	p := writeFile(t, t.TempDir(), "answers.json", `{"obs":["Não apresenta nenhuma das anteriores."],"answers":{"41":"CT","42":"CT"}}`)

	out, err := run(t, "score", p, "--document")
	require.NoError(t, err)
	assert.Contains(t, out, `"comportamento_social": {`)
	assert.Contains(t, out, `"classificacao": "MÉDIA"`)
	assert.Contains(t, out, `"total_geral": {`)
}

func TestScoreCommand_DefaultTUI(t *testing.T) {
	p := writeFile(t, t.TempDir(), "answers.yaml", completeAnswersYAML())

	out, err := run(t, "score", p)
	require.NoError(t, err)
	assert.Contains(t, out, "ETDAH-II")
	assert.Contains(t, out, "ATENÇÃO (A)")
	assert.Contains(t, out, "Todos os itens respondidos.")
}

func TestScoreCommand_StrictFailsOnPartial(t *testing.T) {
	p := writeFile(t, t.TempDir(), "answers.yaml", "obs: [\"Não apresenta nenhuma das anteriores.\"]\nanswers:\n  1: DT\n")

	_, err := run(t, "score", p, "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "responda o item 2")

	_, err = run(t, "score", p)
	assert.NoError(t, err)
}

func TestScoreCommand_MissingFile(t *testing.T) {
	_, err := run(t, "score", "does-not-exist.yaml")
	assert.Error(t, err)
}
