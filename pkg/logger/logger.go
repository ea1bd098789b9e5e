package logger

// Logger описывает структурированный логгер, которым пользуются все слои сервиса.
// Компоненты принимают узкие интерфейсы с тем же набором методов, что упрощает моки.
type Logger interface {
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type Field struct {
	Key   string
	Value any
}

func NewField(key string, value any) Field {
	return Field{Key: key, Value: value}
}
