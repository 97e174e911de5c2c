package telegram

// Command replies.
const (
	startReply = "Hola! Bienvenido/a a Hotel Palermo Soho.\n\n" +
		"Soy Sofia, tu asistente virtual. Puedo ayudarte con:\n" +
		"- Informacion de tu reserva\n" +
		"- Amenities del hotel (WiFi, desayuno, piscina...)\n" +
		"- Pedidos de servicio (toallas, late checkout...)\n" +
		"- Preguntas frecuentes\n\n" +
		"Si tenes una reserva, compartime tu numero de confirmacion " +
		"para brindarte atencion personalizada.\n\n" +
		"Comandos:\n" +
		"/help - Ver que puedo hacer\n" +
		"/reset - Reiniciar conversacion"

	helpReply = "Soy Sofia, el asistente virtual de Hotel Palermo Soho.\n\n" +
		"Puedo ayudarte con:\n" +
		"1. Informacion de reserva - check-in/out, confirmacion, habitacion\n" +
		"2. Amenities - WiFi, desayuno, piscina, gym, parking\n" +
		"3. Pedidos - toallas extra, late checkout, wake-up call\n" +
		"4. Preguntas generales - como llegar, mascotas, lavanderia\n\n" +
		"Simplemente escribime tu consulta y te respondo al toque!\n\n" +
		"Si no puedo resolver algo, te conecto con recepcion."

	resetReply = "Listo, reinicie la conversacion. Empecemos de nuevo!\n" +
		"En que puedo ayudarte?"

	technicalDifficultyReply = "Disculpa, tuve un problema tecnico. " +
		"Por favor intenta de nuevo o contacta a recepcion al +54 11 4833-1234."
)
