package entity

import "time"

// Tipos de serviço de um agendamento.
const (
	ServicoConsulta   = "consulta"
	ServicoVacinacao  = "vacinacao"
	ServicoCirurgia   = "cirurgia"
	ServicoExame      = "exame"
	ServicoBanhoTosa  = "banho-tosa"
	ServicoEmergencia = "emergencia"
)

// Status possíveis de um agendamento.
const (
	AgendamentoAgendado   = "agendado"
	AgendamentoConfirmado = "confirmado"
	AgendamentoCancelado  = "cancelado"
	AgendamentoConcluido  = "concluido"
)

// TipoServicoValido verifica o tipo de serviço.
func TipoServicoValido(t string) bool {
	switch t {
	case ServicoConsulta, ServicoVacinacao, ServicoCirurgia, ServicoExame, ServicoBanhoTosa, ServicoEmergencia:
		return true
	}
	return false
}

// StatusAgendamentoValido verifica o status.
func StatusAgendamentoValido(s string) bool {
	switch s {
	case AgendamentoAgendado, AgendamentoConfirmado, AgendamentoCancelado, AgendamentoConcluido:
		return true
	}
	return false
}

// Agendamento representa uma consulta ou serviço marcado para um paciente.
type Agendamento struct {
	ID          string
	UserID      string
	PacienteID  string
	DataHora    time.Time
	TipoServico string
	Status      string
	Observacoes string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
