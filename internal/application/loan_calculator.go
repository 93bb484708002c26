package application

import "math"

// MonthlyPayment calcula la cuota mensual de un crédito con la fórmula de
// amortización francesa. La tasa se trabaja en precisión simple: la tasa
// mensual r y la base (1 + r) son float32, la potencia y los productos float64.
//
// Con tasa 0 el denominador es 0 y el resultado es NaN; no se corrige.
func MonthlyPayment(amount int64, interestRate float32, term int) float64 {
	r := float32(float32(interestRate/12) / 100)
	n := term * 12

	growth := math.Pow(float64(float32(1+r)), float64(n))

	return float64(amount) * ((float64(r) * growth) / (growth - 1))
}

// TotalMonthlyCost suma a la cuota mensual el seguro de desgravamen, la
// comisión de administración (ambos como porcentaje del monto) y los
// seguros adicionales. Hereda el NaN de MonthlyPayment con tasa 0.
func TotalMonthlyCost(amount int64, interestRate float32, term int, desgravament, adminComPor float32, secure ...float64) float64 {
	monthlyFee := MonthlyPayment(amount, interestRate, term)

	secDesgravament := float32(float32(amount) * desgravament)
	adminCom := float32(float32(amount) * adminComPor)

	monthlyCost := monthlyFee + float64(secDesgravament)
	for _, s := range secure {
		monthlyCost += s
	}

	return monthlyCost + float64(adminCom)
}
