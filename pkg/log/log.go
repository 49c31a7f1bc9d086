package log

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields = logrus.Fields

const syncIDField = "sync_id"

// Setup configura o formato dos logs e o nível a partir da configuração.
// Níveis inválidos caem em info sem interromper a execução.
func Setup(level string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

// NewSyncID gera o identificador de correlação de uma execução de sync.
func NewSyncID() string {
	return uuid.New().String()
}

// ForSync cria um logger com o id da execução para correlacionar as
// mensagens de uma mesma rodada.
func ForSync(syncID string) *logrus.Entry {
	return logrus.WithField(syncIDField, syncID)
}
