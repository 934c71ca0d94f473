package catalog

// Default returns the built-in catalog: the normalized MariaDB schema of
// the Cityline banking demo.
func Default() *Catalog {
	return &Catalog{
		Title: "MariaDB 정규화 스키마 테이블명세서",
		Intro: []string{
			"본 문서는 대규모 사용자를 고려해 정규화한 핵심 스키마 기준으로 작성되었습니다.",
		},
		Overview: &Overview{
			Heading: "개요(ERD 관점)",
			Paragraphs: []string{
				"users 1:N accounts, accounts 1:N transactions/transaction_entries/transaction_reviews/account_status_history",
				"transactions 1:N transaction_entries 및 transaction_reviews",
			},
		},
		Sections: defaultSections(),
		Meta:     DefaultMeta(),
		Labels:   DefaultLabels(),
	}
}

func DefaultMeta() Meta {
	return Meta{
		Title:       "MariaDB Table Specification",
		Creator:     "Cityline",
		Application: "Cityline Bank Demo",
		Company:     "Cityline",
	}
}

func defaultSections() []*Section {
	return []*Section{
		{
			Name:        "users",
			Kind:        KindTable,
			Description: "고객·관리자 기본 계정 정보 마스터.",
			Columns: []ColumnRow{
				{"user_id", "BIGINT UNSIGNED", "PK, AUTO_INCREMENT", "사용자 고유 ID"},
				{"role", "ENUM('admin','customer')", "NOT NULL, DEFAULT 'customer'", "권한 구분"},
				{"login_id", "VARCHAR(64)", "UNIQUE, NOT NULL", "로그인 ID"},
				{"name", "VARCHAR(80)", "NOT NULL", "사용자 이름"},
				{"pin_hash", "VARBINARY(128)", "NOT NULL", "PIN 해시값"},
				{"is_active", "TINYINT(1)", "NOT NULL, DEFAULT 1", "활성 상태(1=활성, 0=비활성)"},
				{"created_at", "DATETIME(6)", "NOT NULL, DEFAULT CURRENT_TIMESTAMP(6)", "생성일시"},
				{"updated_at", "DATETIME(6)", "NOT NULL, DEFAULT CURRENT_TIMESTAMP(6) ON UPDATE CURRENT_TIMESTAMP(6)", "수정일시"},
			},
			Constraints: []ConstraintRow{
				{"PK", "PRIMARY KEY (user_id)"},
				{"UK", "UNIQUE KEY (login_id)"},
			},
		},
		{
			Name:        "accounts",
			Kind:        KindTable,
			Description: "사용자 소유의 은행 계좌 정보. 다수 계좌 확장을 고려한 구조.",
			Columns: []ColumnRow{
				{"account_id", "BIGINT UNSIGNED", "PK, AUTO_INCREMENT", "계좌 고유 ID"},
				{"account_no", "VARCHAR(64)", "UNIQUE, NOT NULL", "계좌번호"},
				{"user_id", "BIGINT UNSIGNED", "FK, NOT NULL", "사용자(user) 참조 키"},
				{"balance", "BIGINT", "NOT NULL, DEFAULT 0", "현재 잔액"},
				{"is_frozen", "TINYINT(1)", "NOT NULL, DEFAULT 0", "잠김 상태(1=동결)"},
				{"created_at", "DATETIME(6)", "NOT NULL, DEFAULT CURRENT_TIMESTAMP(6)", "생성일시"},
				{"updated_at", "DATETIME(6)", "NOT NULL, DEFAULT CURRENT_TIMESTAMP(6) ON UPDATE CURRENT_TIMESTAMP(6)", "수정일시"},
			},
			Constraints: []ConstraintRow{
				{"PK", "PRIMARY KEY (account_id)"},
				{"FK", "fk_accounts_user: accounts.user_id -> users.user_id (ON UPDATE CASCADE, ON DELETE RESTRICT)"},
				{"UK", "UNIQUE KEY (account_no)"},
				{"IDX", "INDEX idx_accounts_user (user_id)"},
				{"IDX", "INDEX idx_accounts_frozen (is_frozen)"},
			},
		},
		{
			Name:        "transactions",
			Kind:        KindTable,
			Description: "거래 본문(헤더). 승인대기/완료/반려 상태를 관리.",
			Columns: []ColumnRow{
				{"transaction_id", "BIGINT UNSIGNED", "PK, AUTO_INCREMENT", "거래 고유 ID"},
				{"txn_key", "VARCHAR(64)", "UNIQUE, NOT NULL", "거래키(중복방지용)"},
				{"type", "ENUM('DEPOSIT','WITHDRAW','TRANSFER','ACCOUNT_CREATE','ADMIN_ADJUST','ACCOUNT_FREEZE','ACCOUNT_UNFREEZE')", "NOT NULL", "거래 유형"},
				{"status", "ENUM('PENDING_APPROVAL','COMPLETED','REJECTED','FAILED')", "NOT NULL, DEFAULT 'COMPLETED'", "거래 상태"},
				{"actor_account_id", "BIGINT UNSIGNED", "NULL 허용, FK", "요청 계좌"},
				{"memo", "VARCHAR(255)", "NULL 허용", "거래 메모"},
				{"request_ip", "VARBINARY(16)", "NULL 허용", "요청 IP"},
				{"idempotency_key", "VARCHAR(128)", "UNIQUE, NULL 허용", "멱등키"},
				{"created_at", "DATETIME(6)", "NOT NULL, DEFAULT CURRENT_TIMESTAMP(6)", "생성일시"},
				{"updated_at", "DATETIME(6)", "NOT NULL, DEFAULT CURRENT_TIMESTAMP(6) ON UPDATE CURRENT_TIMESTAMP(6)", "수정일시"},
			},
			Constraints: []ConstraintRow{
				{"PK", "PRIMARY KEY (transaction_id)"},
				{"FK", "fk_transactions_actor_account: transactions.actor_account_id -> accounts.account_id (ON UPDATE CASCADE, ON DELETE SET NULL)"},
				{"UK", "UNIQUE KEY uniq_idempotency (idempotency_key)"},
				{"IDX", "INDEX idx_tx_status_created (status, created_at)"},
				{"IDX", "INDEX idx_tx_actor_created (actor_account_id, created_at)"},
			},
		},
		{
			Name:        "transaction_entries",
			Kind:        KindTable,
			Description: "거래 항목(이중분개). 하나의 거래를 여러 계좌 항목으로 분해.",
			Columns: []ColumnRow{
				{"entry_id", "BIGINT UNSIGNED", "PK, AUTO_INCREMENT", "항목 고유 ID"},
				{"transaction_id", "BIGINT UNSIGNED", "FK, NOT NULL", "거래 헤더 참조"},
				{"account_id", "BIGINT UNSIGNED", "FK, NOT NULL", "계좌 참조"},
				{"entry_type", "ENUM('DEBIT','CREDIT')", "NOT NULL", "차변/대변"},
				{"amount", "BIGINT", "NOT NULL, CHECK (amount > 0)", "금액"},
				{"counterparty_account_id", "BIGINT UNSIGNED", "NULL 허용, FK", "상대 계좌"},
				{"balance_after", "BIGINT", "NULL 허용", "처리 후 잔액"},
				{"created_at", "DATETIME(6)", "NOT NULL, DEFAULT CURRENT_TIMESTAMP(6)", "생성일시"},
			},
			Constraints: []ConstraintRow{
				{"PK", "PRIMARY KEY (entry_id)"},
				{"FK", "fk_entries_txn: transaction_entries.transaction_id -> transactions.transaction_id (ON UPDATE CASCADE, ON DELETE CASCADE)"},
				{"FK", "fk_entries_account: transaction_entries.account_id -> accounts.account_id (ON UPDATE CASCADE, ON DELETE RESTRICT)"},
				{"FK", "fk_entries_counterparty: transaction_entries.counterparty_account_id -> accounts.account_id (ON UPDATE CASCADE, ON DELETE SET NULL)"},
				{"UK", "UNIQUE KEY uniq_entry_side (transaction_id, account_id, entry_type)"},
				{"IDX", "INDEX idx_entries_account_created (account_id, created_at)"},
				{"IDX", "INDEX idx_entries_txn (transaction_id)"},
			},
		},
		{
			Name:        "transaction_reviews",
			Kind:        KindTable,
			Description: "승인/반려 이력 테이블(고액 이체 등 승인 워크플로우).",
			Columns: []ColumnRow{
				{"review_id", "BIGINT UNSIGNED", "PK, AUTO_INCREMENT", "심사 이력 ID"},
				{"transaction_id", "BIGINT UNSIGNED", "FK, NOT NULL", "거래 참조"},
				{"reviewer_account_id", "BIGINT UNSIGNED", "NULL 허용, FK", "승인자 계좌"},
				{"decision", "ENUM('APPROVED','REJECTED')", "NOT NULL", "승인/반려"},
				{"reason", "VARCHAR(255)", "NULL 허용", "승인/반려 사유"},
				{"decided_at", "DATETIME(6)", "NOT NULL, DEFAULT CURRENT_TIMESTAMP(6)", "의사결정일시"},
			},
			Constraints: []ConstraintRow{
				{"PK", "PRIMARY KEY (review_id)"},
				{"FK", "fk_reviews_txn: transaction_reviews.transaction_id -> transactions.transaction_id (ON UPDATE CASCADE, ON DELETE CASCADE)"},
				{"FK", "fk_reviews_reviewer: transaction_reviews.reviewer_account_id -> accounts.account_id (ON UPDATE CASCADE, ON DELETE SET NULL)"},
				{"IDX", "INDEX idx_reviews_txn (transaction_id)"},
				{"IDX", "INDEX idx_reviews_reviewer (reviewer_account_id, decided_at)"},
			},
		},
		{
			Name:        "account_status_history",
			Kind:        KindTable,
			Description: "계좌 상태 변경 이력(동결/해제 추적).",
			Columns: []ColumnRow{
				{"history_id", "BIGINT UNSIGNED", "PK, AUTO_INCREMENT", "이력 ID"},
				{"account_id", "BIGINT UNSIGNED", "FK, NOT NULL", "대상 계좌"},
				{"changed_by_account_id", "BIGINT UNSIGNED", "NULL 허용, FK", "변경자"},
				{"previous_state", "TINYINT(1)", "NOT NULL", "이전 상태"},
				{"new_state", "TINYINT(1)", "NOT NULL", "변경 후 상태"},
				{"reason", "VARCHAR(255)", "NULL 허용", "변경 사유"},
				{"changed_at", "DATETIME(6)", "NOT NULL, DEFAULT CURRENT_TIMESTAMP(6)", "변경일시"},
			},
			Constraints: []ConstraintRow{
				{"PK", "PRIMARY KEY (history_id)"},
				{"FK", "fk_status_history_account: account_status_history.account_id -> accounts.account_id (ON UPDATE CASCADE, ON DELETE RESTRICT)"},
				{"FK", "fk_status_history_actor: account_status_history.changed_by_account_id -> accounts.account_id (ON UPDATE CASCADE, ON DELETE SET NULL)"},
				{"IDX", "INDEX idx_status_history_account (account_id, changed_at)"},
			},
		},
		{
			Name:        "v_account_balance_snapshot",
			Kind:        KindView,
			Description: "대시보드 조회용 잔액 스냅샷 뷰.",
			Columns: []ColumnRow{
				{"account_id", "BIGINT", "", "계좌 ID"},
				{"account_no", "VARCHAR(64)", "", "계좌번호"},
				{"balance", "BIGINT", "", "현재 잔액"},
				{"name", "VARCHAR(80)", "", "소유자 이름"},
				{"login_id", "VARCHAR(64)", "", "로그인 ID"},
				{"role", "ENUM('admin','customer')", "", "권한"},
				{"is_frozen", "TINYINT(1)", "", "잠김 상태"},
				{"updated_at", "DATETIME(6)", "", "최근 업데이트 일시"},
			},
			Constraints: []ConstraintRow{
				{"Type", "CREATE OR REPLACE VIEW"},
				{"Source", "accounts JOIN users ON users.user_id = accounts.user_id"},
				{"Columns", "account_id, account_no, balance, name, login_id, role, is_frozen, updated_at"},
			},
		},
	}
}
