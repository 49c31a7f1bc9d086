package export

import (
	"bytes"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/backoffice-metrics-sync/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Writer serializa o documento de métricas e sobrescreve o arquivo de
// destino. O caminho é injetado na construção para permitir isolamento
// nos testes (diretório temporário) em vez de uma constante global.
type Writer struct {
	path string
}

func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

func (w *Writer) Path() string {
	return w.path
}

// Write grava o JSON identado (2 espaços) criando os diretórios
// intermediários se necessário. A escrita não é atômica: o arquivo é um
// snapshot regenerado a cada execução, não um registro de sistema.
func (w *Writer) Write(doc *domain.MetricsDocument) error {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false) // preserva acentos e URLs literalmente
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return errors.Wrap(err, "erro ao serializar documento de métricas")
	}

	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return errors.Wrapf(err, "erro ao criar diretório de saída para %s", w.path)
	}

	if err := os.WriteFile(w.path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "erro ao escrever %s", w.path)
	}

	return nil
}
