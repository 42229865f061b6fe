package response

type AdminOverview struct {
	TotalUsers           int64   `json:"totalUsers"`
	TotalProfessionals   int64   `json:"totalProfessionals"`
	TotalClients         int64   `json:"totalClients"`
	TotalBookings        int64   `json:"totalBookings"`
	TotalRevenue         float64 `json:"totalRevenue"`
	PendingBookings      int64   `json:"pendingBookings"`
	CompletedBookings    int64   `json:"completedBookings"`
	TotalServices        int64   `json:"totalServices"`
	PendingVerifications int64   `json:"pendingVerifications"`
}

type MonthlyStat struct {
	Month    string  `json:"month"` // 2006-01
	Bookings int64   `json:"bookings"`
	Revenue  float64 `json:"revenue"`
	NewUsers int64   `json:"newUsers"`
}

type TopProfessional struct {
	UserID        string  `json:"userId"`
	Name          string  `json:"name"`
	BusinessName  string  `json:"businessName,omitempty"`
	TotalEarnings float64 `json:"totalEarnings"`
	TotalBookings int64   `json:"totalBookings"`
	AverageRating float64 `json:"averageRating"`
	IsVerified    bool    `json:"isVerified"`
}

type AdminStatsResponse struct {
	Overview         AdminOverview     `json:"overview"`
	MonthlyStats     []MonthlyStat     `json:"monthlyStats"`
	TopProfessionals []TopProfessional `json:"topProfessionals"`
}
