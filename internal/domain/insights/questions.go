package insights

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Topic tema reconocido en una pregunta libre.
type Topic int

const (
	TopicUnknown Topic = iota
	TopicRevenue
	TopicCustomers
	TopicOrders
	TopicOverdue
)

func (t Topic) String() string {
	switch t {
	case TopicRevenue:
		return "faturamento"
	case TopicCustomers:
		return "clientes"
	case TopicOrders:
		return "pedidos"
	case TopicOverdue:
		return "atrasos"
	}
	return "desconhecido"
}

// FallbackAnswer respuesta cuando la pregunta no coincide con ningún tema.
const FallbackAnswer = "Desculpe, não entendi sua pergunta. Tente perguntar sobre faturamento, clientes, pedidos ou atrasos."

// questionTriggers se recorren en orden; gana la primera coincidencia.
var questionTriggers = []struct {
	keywords []string
	topic    Topic
}{
	{[]string{"faturamento", "receita"}, TopicRevenue},
	{[]string{"cliente"}, TopicCustomers},
	{[]string{"pedido"}, TopicOrders},
	{[]string{"atraso"}, TopicOverdue},
}

// ClassifyQuestion identifica el tema de la pregunta sin distinguir mayúsculas.
func ClassifyQuestion(q string) Topic {
	// Un Caser no es seguro entre goroutines; se crea por llamada.
	text := cases.Lower(language.BrazilianPortuguese).String(q)
	for _, t := range questionTriggers {
		for _, kw := range t.keywords {
			if strings.Contains(text, kw) {
				return t.topic
			}
		}
	}
	return TopicUnknown
}

func RevenueAnswer(v decimal.Decimal) string {
	return fmt.Sprintf("O faturamento deste mês é de R$ %s.", v.StringFixed(2))
}

func CustomersAnswer(total, active int) string {
	return fmt.Sprintf("Você tem %d clientes cadastrados, sendo %d ativos.", total, active)
}

func OrdersAnswer(total, inProgress int) string {
	return fmt.Sprintf("Existem %d pedidos no total, com %d em andamento.", total, inProgress)
}

func OverdueAnswer(n int) string {
	return fmt.Sprintf("Há %d pedidos atrasados no momento.", n)
}
