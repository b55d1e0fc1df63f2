package util

type Envelope map[string]any

func Error(message string) Envelope {
	return Envelope{"error": message}
}

// ValidationErrors keeps the first message under "error" and lists all of them.
func ValidationErrors(messages []string) Envelope {
	if len(messages) == 0 {
		return Error("Invalid input")
	}
	return Envelope{"error": messages[0], "errors": messages}
}

func Data(key string, value any) Envelope {
	return Envelope{key: value}
}

func Message(message string) Envelope {
	return Envelope{"message": message}
}
