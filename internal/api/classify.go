package api

import (
	"errors"
	"net"
)

// Fixed fallback messages, used only when the server supplied none.
// The UI renders these verbatim.
const (
	msgNetwork      = "Errore di connessione. Verifica la tua connessione a Internet."
	msgUnauthorized = "Non autorizzato. Effettua di nuovo l'accesso."
	msgForbidden    = "Accesso negato."
	msgNotFound     = "Risorsa non trovata."
	msgInvalidInput = "I dati inseriti non sono validi."
	msgServerError  = "Errore del server. Riprova più tardi."
	msgGeneric      = "Richiesta non riuscita."
)

// defaultMessage maps a status code to its fixed fallback message.
// Status 0 denotes a transport-level failure that never reached the server.
func defaultMessage(status int) string {
	switch {
	case status == 0:
		return msgNetwork
	case status == 401:
		return msgUnauthorized
	case status == 403:
		return msgForbidden
	case status == 404:
		return msgNotFound
	case status == 422:
		return msgInvalidInput
	case status >= 500:
		return msgServerError
	default:
		return msgGeneric
	}
}

// classifyTransport derives the message for a request that failed before a
// response was obtained. Connection-shaped failures get guidance naming the
// configured base URL, so a wrong backend address is diagnosable from the
// client alone.
func classifyTransport(err error, baseURL string) string {
	msg := msgNetwork
	if isConnectionError(err) {
		msg += " Verifica che il server sia raggiungibile su " + baseURL + "."
	}
	return msg
}

// isConnectionError reports whether err looks like the request never made it
// to a server: refused connections, DNS failures, timeouts.
func isConnectionError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
